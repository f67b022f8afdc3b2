package types

import "time"

// Chain identifiers are string slugs ("ethereum", "solana"); ChainID is the
// network's numeric id (101 for Solana by common convention).
type Chain struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RPCURL         string `json:"rpc_url"`
	ChainID        int    `json:"chain_id"`
	CurrencySymbol string `json:"currency_symbol"`
	ExplorerURL    string `json:"explorer_url"`
	LogoURL        string `json:"logo_url,omitempty"`
}

// Token belongs to exactly one chain, referenced by the chain's slug.
// A zero PriceUSD means no price is known.
type Token struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Decimals int     `json:"decimals"`
	ChainID  string  `json:"chain_id"`
	LogoURL  string  `json:"logo_url,omitempty"`
	PriceUSD float64 `json:"price_usd,omitempty"`
}

// SwapRequest is a caller's swap intent, never persisted as-is.
// Amount is a decimal string in source token units.
type SwapRequest struct {
	FromChain   string   `json:"from_chain"`
	ToChain     string   `json:"to_chain"`
	FromToken   string   `json:"from_token"`
	ToToken     string   `json:"to_token"`
	Amount      string   `json:"amount"`
	Slippage    *float64 `json:"slippage,omitempty"`
	UserAddress string   `json:"user_address"`
}

// SlippagePercent returns the requested slippage tolerance in percent,
// defaulting to 0.5 when the field was omitted from the request body.
func (r *SwapRequest) SlippagePercent() float64 {
	if r.Slippage == nil {
		return 0.5
	}
	return *r.Slippage
}

// RouteStep is one simulated hop of a swap route, either a dex trade on a
// single chain or a cross-chain bridge transfer.
type RouteStep struct {
	Protocol   string `json:"protocol"`
	Chain      string `json:"chain,omitempty"`
	Type       string `json:"type"`
	BridgeName string `json:"bridge_name,omitempty"`
}

// SwapQuote is a freshly computed estimate, never persisted.
// BridgeFees is nil for same-chain swaps.
type SwapQuote struct {
	FromToken     Token       `json:"from_token"`
	ToToken       Token       `json:"to_token"`
	FromAmount    string      `json:"from_amount"`
	ToAmount      string      `json:"to_amount"`
	Route         []RouteStep `json:"route"`
	EstimatedGas  string      `json:"estimated_gas"`
	Slippage      float64     `json:"slippage"`
	PriceImpact   float64     `json:"price_impact"`
	ExecutionTime int         `json:"execution_time"`
	BridgeFees    *string     `json:"bridge_fees"`
}

const (
	TxStatusPending   = "pending"
	TxStatusCompleted = "completed"
	TxStatusFailed    = "failed"
)

// Transaction is the durable record of an executed swap. Records are
// insert-only; timestamps marshal as RFC 3339 strings on the wire.
type Transaction struct {
	ID           string     `json:"id"`
	UserAddress  string     `json:"user_address"`
	FromChain    string     `json:"from_chain"`
	ToChain      string     `json:"to_chain"`
	FromToken    string     `json:"from_token"`
	ToToken      string     `json:"to_token"`
	FromAmount   string     `json:"from_amount"`
	ToAmount     string     `json:"to_amount"`
	Status       string     `json:"status"`
	TxHash       string     `json:"tx_hash,omitempty"`
	BridgeTxHash string     `json:"bridge_tx_hash,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}
