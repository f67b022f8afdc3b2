package handlers

import (
	"net/http"

	"gosyncswap/config"
)

type APIStatsResponse struct {
	TransactionVolume    string `json:"transaction_volume"`
	SuccessRate          string `json:"success_rate"`
	IntegratedDapps      string `json:"integrated_dapps"`
	HappyUsers           string `json:"happy_users"`
	SupportedChains      int    `json:"supported_chains"`
	AverageExecutionTime string `json:"average_execution_time"`
}

func GetStats(w http.ResponseWriter, r *http.Request) {
	responseJSON(w, &APIStatsResponse{
		TransactionVolume:    "$50M+",
		SuccessRate:          "99.9%",
		IntegratedDapps:      "50+",
		HappyUsers:           "100K+",
		SupportedChains:      len(config.SupportedChains),
		AverageExecutionTime: "30s",
	}, http.StatusOK)
}
