// Package quote computes simulated swap quotes over the static reference
// tables. Computation is pure: same request, same quote.
package quote

import (
	"errors"
	"fmt"
	"math"

	"gosyncswap/config"
	"gosyncswap/types"

	"github.com/shopspring/decimal"
)

var ErrTokenNotFound = errors.New("token not found")

// fee rates are fractions of the USD notional
var (
	protocolFeeRate = decimal.NewFromFloat(0.003)
	bridgeFeeRate   = decimal.NewFromFloat(0.001)
)

// executionTimes is keyed by unordered chain pairs, seconds
var executionTimes = map[[2]string]int{
	{"ethereum", "polygon"}:  5,
	{"ethereum", "arbitrum"}: 8,
	{"ethereum", "solana"}:   45,
	{"polygon", "arbitrum"}:  12,
	{"arbitrum", "optimism"}: 15,
}

const defaultExecutionTime = 30

// price impact ceiling, percent
const maxPriceImpact = 0.5

var oneHundred = decimal.NewFromInt(100)

// ResolveToken finds a token by exact symbol match within a chain's token
// list. An unknown chain resolves like a known chain with no tokens.
func ResolveToken(chainID, symbol string) (types.Token, error) {
	for _, t := range config.PopularTokens[chainID] {
		if t.Symbol == symbol {
			return t, nil
		}
	}
	return types.Token{}, fmt.Errorf("%w: %s on %s", ErrTokenNotFound, symbol, chainID)
}

// Compute builds a quote for the request. The destination amount is the USD
// notional of the source amount minus bridge fee (cross-chain only),
// slippage and protocol fee, converted at the destination token's USD price.
// A source token without a price quotes as worthless; a destination token
// without a price converts one-to-one from USD.
func Compute(req *types.SwapRequest) (*types.SwapQuote, error) {
	fromToken, err := ResolveToken(req.FromChain, req.FromToken)
	if err != nil {
		return nil, err
	}
	toToken, err := ResolveToken(req.ToChain, req.ToToken)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %s", req.Amount, err.Error())
	}

	notional := amount.Mul(decimal.NewFromFloat(fromToken.PriceUSD))

	crossChain := req.FromChain != req.ToChain
	var bridgeFee decimal.Decimal
	if crossChain {
		bridgeFee = notional.Mul(bridgeFeeRate)
	}
	slippageCut := notional.Mul(decimal.NewFromFloat(req.SlippagePercent())).Div(oneHundred)
	protocolFee := notional.Mul(protocolFeeRate)

	netUSD := notional.Sub(bridgeFee).Sub(slippageCut).Sub(protocolFee)

	toPrice := toToken.PriceUSD
	if toPrice == 0 {
		toPrice = 1
	}
	toAmount := netUSD.Div(decimal.NewFromFloat(toPrice))

	route := buildRoute(req.FromChain, req.ToChain)

	q := &types.SwapQuote{
		FromToken:     fromToken,
		ToToken:       toToken,
		FromAmount:    req.Amount,
		ToAmount:      toAmount.Round(6).String(),
		Route:         route,
		EstimatedGas:  estimatedGas(len(route)),
		Slippage:      req.SlippagePercent(),
		PriceImpact:   priceImpact(amount),
		ExecutionTime: executionTime(req.FromChain, req.ToChain),
	}
	if crossChain {
		fee := bridgeFee.Round(6).String()
		q.BridgeFees = &fee
	}
	return q, nil
}

// one dex hop for same-chain swaps, dex-bridge-dex otherwise
func buildRoute(from, to string) []types.RouteStep {
	if from == to {
		return []types.RouteStep{
			{Protocol: "1inch", Chain: from, Type: "dex"},
		}
	}
	return []types.RouteStep{
		{Protocol: "1inch", Chain: from, Type: "dex"},
		{Protocol: "Li.Fi Bridge", Type: "bridge", BridgeName: "Across"},
		{Protocol: "1inch", Chain: to, Type: "dex"},
	}
}

// gas scales linearly with the number of route steps
func estimatedGas(steps int) string {
	base := decimal.NewFromFloat(0.002)
	perStep := decimal.NewFromFloat(0.001)
	return base.Add(perStep.Mul(decimal.NewFromInt(int64(steps)))).String()
}

// capped linear function of the requested amount, percent, 3 decimals
func priceImpact(amount decimal.Decimal) float64 {
	f, _ := amount.Float64()
	impact := f / 1000 * 0.1
	if impact > maxPriceImpact {
		impact = maxPriceImpact
	}
	return math.Round(impact*1000) / 1000
}

// unknown pairs (in either order) fall back to the default
func executionTime(from, to string) int {
	if secs, ok := executionTimes[[2]string{from, to}]; ok {
		return secs
	}
	if secs, ok := executionTimes[[2]string{to, from}]; ok {
		return secs
	}
	return defaultExecutionTime
}
