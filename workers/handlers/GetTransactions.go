package handlers

import (
	"net/http"

	"gosyncswap/types"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog/log"
)

type APITransactionsResponse struct {
	Transactions []*types.Transaction `json:"transactions"`
}

// GetTransactions returns the caller's history, newest first, at most 50.
// Store failures degrade to an empty list so the history view stays up.
func GetTransactions(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	txs, err := Store.UserTransactions(address)
	if err != nil {
		log.Error().Err(err).Str("user", address).Msg("transaction history lookup failed")
		txs = nil
	}
	if txs == nil {
		txs = []*types.Transaction{}
	}

	responseJSON(w, &APITransactionsResponse{Transactions: txs}, http.StatusOK)
}
