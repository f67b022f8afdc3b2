package handlers

import (
	"net/http"
	"time"
)

type TokenPrice struct {
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
	Volume24h float64 `json:"volume_24h"`
}

type APIPricesResponse struct {
	Prices    map[string]map[string]TokenPrice `json:"prices"`
	Timestamp string                           `json:"timestamp"`
}

// GetPrices returns the simulated market price feed. The figures are a market
// snapshot and deliberately drift from the reference-table quote prices.
func GetPrices(w http.ResponseWriter, r *http.Request) {
	prices := map[string]map[string]TokenPrice{
		"ethereum": {
			"ETH":  {Price: 3250.75, Change24h: 2.45, Volume24h: 15000000000},
			"USDC": {Price: 1.001, Change24h: 0.01, Volume24h: 8000000000},
			"USDT": {Price: 0.999, Change24h: -0.02, Volume24h: 12000000000},
		},
		"solana": {
			"SOL":  {Price: 162.30, Change24h: -1.25, Volume24h: 2500000000},
			"USDC": {Price: 1.000, Change24h: 0.00, Volume24h: 1500000000},
		},
		"polygon": {
			"MATIC": {Price: 0.845, Change24h: 3.78, Volume24h: 500000000},
			"USDC":  {Price: 1.000, Change24h: 0.01, Volume24h: 800000000},
		},
		"arbitrum": {
			"ETH": {Price: 3250.75, Change24h: 2.45, Volume24h: 3000000000},
			"ARB": {Price: 1.25, Change24h: 5.20, Volume24h: 400000000},
		},
		"optimism": {
			"ETH": {Price: 3250.75, Change24h: 2.45, Volume24h: 2000000000},
			"OP":  {Price: 2.15, Change24h: 1.80, Volume24h: 300000000},
		},
		"bsc": {
			"BNB":  {Price: 315.50, Change24h: -0.95, Volume24h: 1800000000},
			"USDT": {Price: 0.999, Change24h: -0.01, Volume24h: 2500000000},
		},
		"fantom": {
			"FTM": {Price: 0.42, Change24h: 7.35, Volume24h: 150000000},
		},
		"avalanche": {
			"AVAX": {Price: 35.80, Change24h: 4.20, Volume24h: 800000000},
		},
	}

	responseJSON(w, &APIPricesResponse{
		Prices:    prices,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}
