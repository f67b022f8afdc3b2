package handlers

import (
	"errors"
	"net/http"

	"gosyncswap/quote"
	"gosyncswap/types"

	"github.com/rs/zerolog/log"
)

type APIQuoteResponse struct {
	Quote *types.SwapQuote `json:"quote"`
}

func GetQuote(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSwapRequest(w, r)
	if !ok {
		return
	}

	q, err := quote.Compute(req)
	if err != nil {
		if errors.Is(err, quote.ErrTokenNotFound) {
			responseError(w, "Token not found", http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("quote error")
		responseError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	responseJSON(w, &APIQuoteResponse{Quote: q}, http.StatusOK)
}

// GetEmbedQuote serves the widget SDK, same contract as GetQuote.
func GetEmbedQuote(w http.ResponseWriter, r *http.Request) {
	GetQuote(w, r)
}
