package handlers

import (
	"net/http"
	"time"
)

type TrendingToken struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
}

type GasPriceTiers struct {
	Standard float64 `json:"standard"`
	Fast     float64 `json:"fast"`
	Instant  float64 `json:"instant"`
}

type MarketData struct {
	TotalMarketCap      float64                  `json:"total_market_cap"`
	TotalVolume24h      float64                  `json:"total_volume_24h"`
	DefiTVL             float64                  `json:"defi_tvl"`
	CrossChainVolume24h float64                  `json:"cross_chain_volume_24h"`
	ActiveChains        int                      `json:"active_chains"`
	SupportedProtocols  int                      `json:"supported_protocols"`
	TrendingTokens      []TrendingToken          `json:"trending_tokens"`
	GasPrices           map[string]GasPriceTiers `json:"gas_prices"`
}

type APIMarketDataResponse struct {
	MarketData *MarketData `json:"market_data"`
	Timestamp  string      `json:"timestamp"`
}

func GetMarketData(w http.ResponseWriter, r *http.Request) {
	marketData := &MarketData{
		TotalMarketCap:      2650000000000,
		TotalVolume24h:      85000000000,
		DefiTVL:             95000000000,
		CrossChainVolume24h: 1200000000,
		ActiveChains:        8,
		SupportedProtocols:  45,
		TrendingTokens: []TrendingToken{
			{Symbol: "ETH", Price: 3250.75, Change24h: 2.45},
			{Symbol: "SOL", Price: 162.30, Change24h: -1.25},
			{Symbol: "MATIC", Price: 0.845, Change24h: 3.78},
			{Symbol: "ARB", Price: 1.25, Change24h: 5.20},
			{Symbol: "OP", Price: 2.15, Change24h: 1.80},
		},
		GasPrices: map[string]GasPriceTiers{
			"ethereum": {Standard: 25, Fast: 35, Instant: 45},
			"polygon":  {Standard: 30, Fast: 40, Instant: 50},
			"arbitrum": {Standard: 0.5, Fast: 0.8, Instant: 1.2},
			"optimism": {Standard: 0.001, Fast: 0.002, Instant: 0.003},
		},
	}

	responseJSON(w, &APIMarketDataResponse{
		MarketData: marketData,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}
