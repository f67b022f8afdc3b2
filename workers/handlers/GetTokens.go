package handlers

import (
	"net/http"

	"gosyncswap/config"
	"gosyncswap/types"

	"github.com/go-chi/chi"
)

type APITokensResponse struct {
	Chain  string        `json:"chain"`
	Tokens []types.Token `json:"tokens"`
}

func GetTokens(w http.ResponseWriter, r *http.Request) {
	chainID := chi.URLParam(r, "chainID")

	tokens, ok := config.Tokens(chainID)
	if !ok {
		responseError(w, "Chain not supported", http.StatusNotFound)
		return
	}

	responseJSON(w, &APITokensResponse{Chain: chainID, Tokens: tokens}, http.StatusOK)
}
