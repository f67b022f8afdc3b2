package handlers

import (
	"net/http"

	"gosyncswap/config"
)

type APIRootResponse struct {
	Message         string `json:"message"`
	Status          string `json:"status"`
	SupportedChains int    `json:"supported_chains"`
}

func Root(w http.ResponseWriter, r *http.Request) {
	responseJSON(w, &APIRootResponse{
		Message:         "SYNC Cross-Chain API v1.0",
		Status:          "active",
		SupportedChains: len(config.SupportedChains),
	}, http.StatusOK)
}
