package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"gosyncswap/types"

	"github.com/rs/zerolog/log"
)

func responseJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func responseError(w http.ResponseWriter, detail string, code int) {
	responseJSON(w, &APIError{Detail: detail}, code)
}

// decodeSwapRequest reads and unmarshals a swap request body, writing the
// client error response itself when the body is unusable.
func decodeSwapRequest(w http.ResponseWriter, r *http.Request) (*types.SwapRequest, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error().Err(err).Msg("error reading request body")
		responseError(w, "Error reading request body", http.StatusBadRequest)
		return nil, false
	}

	var req types.SwapRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Error().Err(err).Msg("error unmarshalling request body")
		responseError(w, "Cannot unmarshal input JSON", http.StatusBadRequest)
		return nil, false
	}

	return &req, true
}
