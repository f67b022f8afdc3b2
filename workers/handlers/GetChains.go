package handlers

import (
	"net/http"

	"gosyncswap/config"
	"gosyncswap/types"
)

type APIChainsResponse struct {
	Chains []types.Chain `json:"chains"`
}

func GetChains(w http.ResponseWriter, r *http.Request) {
	responseJSON(w, &APIChainsResponse{Chains: config.Chains()}, http.StatusOK)
}
