package quote_test

import (
	"testing"

	"gosyncswap/quote"
	"gosyncswap/types"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(fromChain, toChain, fromToken, toToken, amount string, slippage float64) *types.SwapRequest {
	return &types.SwapRequest{
		FromChain:   fromChain,
		ToChain:     toChain,
		FromToken:   fromToken,
		ToToken:     toToken,
		Amount:      amount,
		Slippage:    &slippage,
		UserAddress: "u1",
	}
}

func TestRouteSteps(t *testing.T) {
	sameChain, err := quote.Compute(newRequest("ethereum", "ethereum", "ETH", "USDC", "1.0", 0.5))
	require.NoError(t, err)
	require.Len(t, sameChain.Route, 1)
	assert.Equal(t, "dex", sameChain.Route[0].Type)
	assert.Equal(t, "ethereum", sameChain.Route[0].Chain)

	crossChain, err := quote.Compute(newRequest("ethereum", "solana", "ETH", "SOL", "1.0", 0.5))
	require.NoError(t, err)
	require.Len(t, crossChain.Route, 3)
	assert.Equal(t, "dex", crossChain.Route[0].Type)
	assert.Equal(t, "bridge", crossChain.Route[1].Type)
	assert.Equal(t, "Across", crossChain.Route[1].BridgeName)
	assert.Equal(t, "dex", crossChain.Route[2].Type)
	assert.Equal(t, "solana", crossChain.Route[2].Chain)
}

func TestCrossChainQuote(t *testing.T) {
	q, err := quote.Compute(newRequest("ethereum", "solana", "ETH", "SOL", "1.0", 0.5))
	require.NoError(t, err)

	// 3000 USD notional minus 3 bridge fee, 15 slippage, 9 protocol fee,
	// converted at 150 USD per SOL
	assert.Equal(t, "19.82", q.ToAmount)
	require.NotNil(t, q.BridgeFees)
	assert.Equal(t, "3", *q.BridgeFees)
	assert.Equal(t, 45, q.ExecutionTime)
	assert.Equal(t, "0.005", q.EstimatedGas)
	assert.Equal(t, 0.5, q.Slippage)

	toAmount, err := decimal.NewFromString(q.ToAmount)
	require.NoError(t, err)
	assert.True(t, toAmount.IsPositive())
	assert.True(t, toAmount.LessThan(decimal.NewFromInt(20)), "must be below the raw 3000/150 conversion")
}

func TestSameChainQuote(t *testing.T) {
	q, err := quote.Compute(newRequest("ethereum", "ethereum", "ETH", "USDC", "1.0", 0.5))
	require.NoError(t, err)

	assert.Equal(t, "2976", q.ToAmount)
	assert.Nil(t, q.BridgeFees)
	assert.Equal(t, "0.003", q.EstimatedGas)
	assert.Equal(t, 30, q.ExecutionTime)
}

func TestZeroAmount(t *testing.T) {
	q, err := quote.Compute(newRequest("ethereum", "solana", "ETH", "SOL", "0", 0.5))
	require.NoError(t, err)
	assert.Equal(t, "0", q.ToAmount)
}

func TestUnknownTokenOrChain(t *testing.T) {
	_, err := quote.Compute(newRequest("ethereum", "solana", "DOGE", "SOL", "1.0", 0.5))
	assert.ErrorIs(t, err, quote.ErrTokenNotFound)

	_, err = quote.Compute(newRequest("nosuchchain", "solana", "ETH", "SOL", "1.0", 0.5))
	assert.ErrorIs(t, err, quote.ErrTokenNotFound)
}

func TestInvalidAmount(t *testing.T) {
	_, err := quote.Compute(newRequest("ethereum", "solana", "ETH", "SOL", "one", 0.5))
	require.Error(t, err)
	assert.NotErrorIs(t, err, quote.ErrTokenNotFound)
}

func TestPriceImpactMonotonicAndCapped(t *testing.T) {
	amounts := []string{"1", "10", "100", "1000", "5000", "10000"}

	prev := -1.0
	for _, amount := range amounts {
		q, err := quote.Compute(newRequest("ethereum", "solana", "ETH", "SOL", amount, 0.5))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, q.PriceImpact, prev, "amount %s", amount)
		assert.LessOrEqual(t, q.PriceImpact, 0.5, "amount %s", amount)
		prev = q.PriceImpact
	}

	q, err := quote.Compute(newRequest("ethereum", "solana", "ETH", "SOL", "100000", 0.5))
	require.NoError(t, err)
	assert.Equal(t, 0.5, q.PriceImpact)
}

func TestExecutionTimePairLookup(t *testing.T) {
	// pair lookup is unordered
	reversed, err := quote.Compute(newRequest("solana", "ethereum", "SOL", "ETH", "1.0", 0.5))
	require.NoError(t, err)
	assert.Equal(t, 45, reversed.ExecutionTime)

	// unknown pair falls back to the default
	fallback, err := quote.Compute(newRequest("fantom", "avalanche", "FTM", "AVAX", "1.0", 0.5))
	require.NoError(t, err)
	assert.Equal(t, 30, fallback.ExecutionTime)
}

func TestSlippageDefaultsWhenOmitted(t *testing.T) {
	req := &types.SwapRequest{
		FromChain:   "ethereum",
		ToChain:     "solana",
		FromToken:   "ETH",
		ToToken:     "SOL",
		Amount:      "1.0",
		UserAddress: "u1",
	}

	q, err := quote.Compute(req)
	require.NoError(t, err)
	assert.Equal(t, 0.5, q.Slippage)
}

func TestResolveTokenExactSymbolMatch(t *testing.T) {
	tok, err := quote.ResolveToken("ethereum", "USDT")
	require.NoError(t, err)
	assert.Equal(t, "ethereum", tok.ChainID)
	assert.Equal(t, 6, tok.Decimals)

	_, err = quote.ResolveToken("ethereum", "usdt")
	assert.ErrorIs(t, err, quote.ErrTokenNotFound)
}
