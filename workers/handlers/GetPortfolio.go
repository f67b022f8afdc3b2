package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
)

type PortfolioHolding struct {
	Symbol   string  `json:"symbol"`
	Balance  string  `json:"balance"`
	USDValue float64 `json:"usd_value"`
}

type PortfolioChain struct {
	Tokens   []PortfolioHolding `json:"tokens"`
	TotalUSD float64            `json:"total_usd"`
}

type Portfolio struct {
	UserAddress string                    `json:"user_address"`
	Chains      map[string]PortfolioChain `json:"chains"`
	TotalUSD    float64                   `json:"total_usd"`
	LastUpdated time.Time                 `json:"last_updated"`
}

type APIPortfolioResponse struct {
	Portfolio *Portfolio `json:"portfolio"`
}

// GetPortfolio returns a simulated holdings summary. Real per-chain balance
// reads are out of scope, the shape is what the frontend renders.
func GetPortfolio(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	portfolio := &Portfolio{
		UserAddress: address,
		Chains: map[string]PortfolioChain{
			"ethereum": {
				Tokens: []PortfolioHolding{
					{Symbol: "ETH", Balance: "1.5", USDValue: 4500.0},
					{Symbol: "USDC", Balance: "1000", USDValue: 1000.0},
				},
				TotalUSD: 5500.0,
			},
			"solana": {
				Tokens: []PortfolioHolding{
					{Symbol: "SOL", Balance: "10", USDValue: 1500.0},
				},
				TotalUSD: 1500.0,
			},
		},
		TotalUSD:    7000.0,
		LastUpdated: time.Now().UTC(),
	}

	responseJSON(w, &APIPortfolioResponse{Portfolio: portfolio}, http.StatusOK)
}
