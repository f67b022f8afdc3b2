package config_test

import (
	"testing"

	"gosyncswap/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryTokenBelongsToAKnownChain(t *testing.T) {
	for chainID, tokens := range config.PopularTokens {
		_, ok := config.SupportedChains[chainID]
		require.True(t, ok, "token table references unknown chain %s", chainID)

		for _, tok := range tokens {
			assert.Equal(t, chainID, tok.ChainID, "token %s filed under wrong chain", tok.Symbol)
		}
	}
}

func TestChainsOrderAndCompleteness(t *testing.T) {
	chains := config.Chains()
	require.Len(t, chains, len(config.SupportedChains))

	assert.Equal(t, "ethereum", chains[0].ID)
	assert.Equal(t, "solana", chains[len(chains)-1].ID)

	for _, c := range chains {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.RPCURL)
		assert.NotEmpty(t, c.CurrencySymbol)
		assert.NotEmpty(t, c.ExplorerURL)
		assert.NotZero(t, c.ChainID)
	}
}

func TestTokensLookup(t *testing.T) {
	tokens, ok := config.Tokens("ethereum")
	require.True(t, ok)

	symbols := map[string]bool{}
	for _, tok := range tokens {
		assert.Equal(t, "ethereum", tok.ChainID)
		symbols[tok.Symbol] = true
	}
	assert.True(t, symbols["ETH"])
	assert.True(t, symbols["USDC"])
	assert.True(t, symbols["USDT"])

	_, ok = config.Tokens("unknownchain")
	assert.False(t, ok)
}

func TestChainIDsIsACopy(t *testing.T) {
	ids := config.ChainIDs()
	require.NotEmpty(t, ids)

	ids[0] = "mutated"
	assert.Equal(t, "ethereum", config.ChainIDs()[0])
}
