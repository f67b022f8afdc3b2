package config

import "gosyncswap/types"

// The chain and token sets are fixed at process start and never mutated.
// Ordering of chainOrder is the listing order the API exposes.

var chainOrder = []string{
	"ethereum", "polygon", "arbitrum", "optimism",
	"bsc", "fantom", "avalanche", "solana",
}

var SupportedChains = map[string]types.Chain{
	"ethereum": {
		ID:             "ethereum",
		Name:           "Ethereum",
		RPCURL:         "https://mainnet.infura.io/v3/",
		ChainID:        1,
		CurrencySymbol: "ETH",
		ExplorerURL:    "https://etherscan.io",
		LogoURL:        "https://cryptologos.cc/logos/ethereum-eth-logo.png",
	},
	"polygon": {
		ID:             "polygon",
		Name:           "Polygon",
		RPCURL:         "https://polygon-rpc.com/",
		ChainID:        137,
		CurrencySymbol: "MATIC",
		ExplorerURL:    "https://polygonscan.com",
		LogoURL:        "https://cryptologos.cc/logos/polygon-matic-logo.png",
	},
	"arbitrum": {
		ID:             "arbitrum",
		Name:           "Arbitrum",
		RPCURL:         "https://arb1.arbitrum.io/rpc",
		ChainID:        42161,
		CurrencySymbol: "ETH",
		ExplorerURL:    "https://arbiscan.io",
		LogoURL:        "https://cryptologos.cc/logos/arbitrum-arb-logo.png",
	},
	"optimism": {
		ID:             "optimism",
		Name:           "Optimism",
		RPCURL:         "https://mainnet.optimism.io",
		ChainID:        10,
		CurrencySymbol: "ETH",
		ExplorerURL:    "https://optimistic.etherscan.io",
		LogoURL:        "https://cryptologos.cc/logos/optimism-ethereum-op-logo.png",
	},
	"bsc": {
		ID:             "bsc",
		Name:           "BNB Smart Chain",
		RPCURL:         "https://bsc-dataseed.binance.org/",
		ChainID:        56,
		CurrencySymbol: "BNB",
		ExplorerURL:    "https://bscscan.com",
		LogoURL:        "https://cryptologos.cc/logos/bnb-bnb-logo.png",
	},
	"fantom": {
		ID:             "fantom",
		Name:           "Fantom",
		RPCURL:         "https://rpc.ftm.tools/",
		ChainID:        250,
		CurrencySymbol: "FTM",
		ExplorerURL:    "https://ftmscan.com",
		LogoURL:        "https://cryptologos.cc/logos/fantom-ftm-logo.png",
	},
	"avalanche": {
		ID:             "avalanche",
		Name:           "Avalanche",
		RPCURL:         "https://api.avax.network/ext/bc/C/rpc",
		ChainID:        43114,
		CurrencySymbol: "AVAX",
		ExplorerURL:    "https://snowtrace.io",
		LogoURL:        "https://cryptologos.cc/logos/avalanche-avax-logo.png",
	},
	"solana": {
		ID:             "solana",
		Name:           "Solana",
		RPCURL:         "https://api.mainnet-beta.solana.com",
		ChainID:        101,
		CurrencySymbol: "SOL",
		ExplorerURL:    "https://explorer.solana.com",
		LogoURL:        "https://cryptologos.cc/logos/solana-sol-logo.png",
	},
}

// PopularTokens holds the tradable token set per chain. Native assets use the
// zero address (EVM) or the wrapped mint (Solana).
var PopularTokens = map[string][]types.Token{
	"ethereum": {
		{Symbol: "ETH", Name: "Ethereum", Address: "0x0000000000000000000000000000000000000000", Decimals: 18, ChainID: "ethereum", PriceUSD: 3000.0},
		{Symbol: "USDC", Name: "USD Coin", Address: "0xA0b86a33E6441b4b89e8B8a5B8E9F8E8A8C8d8e8", Decimals: 6, ChainID: "ethereum", PriceUSD: 1.0},
		{Symbol: "USDT", Name: "Tether", Address: "0xdAC17F958D2ee523a2206206994597C13D831ec7", Decimals: 6, ChainID: "ethereum", PriceUSD: 1.0},
	},
	"polygon": {
		{Symbol: "MATIC", Name: "Polygon", Address: "0x0000000000000000000000000000000000000000", Decimals: 18, ChainID: "polygon", PriceUSD: 0.845},
		{Symbol: "USDC", Name: "USD Coin", Address: "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174", Decimals: 6, ChainID: "polygon", PriceUSD: 1.0},
	},
	"arbitrum": {
		{Symbol: "ETH", Name: "Ethereum", Address: "0x0000000000000000000000000000000000000000", Decimals: 18, ChainID: "arbitrum", PriceUSD: 3000.0},
		{Symbol: "ARB", Name: "Arbitrum", Address: "0x912CE59144191C1204E64559FE8253a0e49E6548", Decimals: 18, ChainID: "arbitrum", PriceUSD: 1.25},
	},
	"optimism": {
		{Symbol: "ETH", Name: "Ethereum", Address: "0x0000000000000000000000000000000000000000", Decimals: 18, ChainID: "optimism", PriceUSD: 3000.0},
		{Symbol: "OP", Name: "Optimism", Address: "0x4200000000000000000000000000000000000042", Decimals: 18, ChainID: "optimism", PriceUSD: 2.15},
	},
	"bsc": {
		{Symbol: "BNB", Name: "BNB", Address: "0x0000000000000000000000000000000000000000", Decimals: 18, ChainID: "bsc", PriceUSD: 315.5},
		{Symbol: "USDT", Name: "Tether", Address: "0x55d398326f99059fF775485246999027B3197955", Decimals: 18, ChainID: "bsc", PriceUSD: 1.0},
	},
	"fantom": {
		{Symbol: "FTM", Name: "Fantom", Address: "0x0000000000000000000000000000000000000000", Decimals: 18, ChainID: "fantom", PriceUSD: 0.42},
	},
	"avalanche": {
		{Symbol: "AVAX", Name: "Avalanche", Address: "0x0000000000000000000000000000000000000000", Decimals: 18, ChainID: "avalanche", PriceUSD: 35.8},
	},
	"solana": {
		{Symbol: "SOL", Name: "Solana", Address: "So11111111111111111111111111111111111111112", Decimals: 9, ChainID: "solana", PriceUSD: 150.0},
		{Symbol: "USDC", Name: "USD Coin", Address: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", Decimals: 6, ChainID: "solana", PriceUSD: 1.0},
	},
}

// Chains returns the supported chain set in canonical listing order.
func Chains() []types.Chain {
	chains := make([]types.Chain, 0, len(chainOrder))
	for _, id := range chainOrder {
		chains = append(chains, SupportedChains[id])
	}
	return chains
}

// ChainIDs returns the supported chain slugs in canonical listing order.
func ChainIDs() []string {
	ids := make([]string, len(chainOrder))
	copy(ids, chainOrder)
	return ids
}

// Tokens returns the token list for a chain; ok reports whether the chain is
// supported at all. A supported chain with no tokens yields an empty list.
func Tokens(chainID string) (tokens []types.Token, ok bool) {
	if _, ok := SupportedChains[chainID]; !ok {
		return nil, false
	}
	tokens = PopularTokens[chainID]
	if tokens == nil {
		tokens = []types.Token{}
	}
	return tokens, true
}
