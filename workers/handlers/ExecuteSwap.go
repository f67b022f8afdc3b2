package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gosyncswap/quote"
	"gosyncswap/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type APISwapResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	TxHash        string `json:"tx_hash"`
	FromAmount    string `json:"from_amount"`
	ToAmount      string `json:"to_amount"`
}

type transactionEvent struct {
	Type        string             `json:"type"`
	Transaction *types.Transaction `json:"transaction"`
}

// ExecuteSwap records a simulated swap. The destination amount comes from the
// same fee pipeline as GetQuote, so an executed swap lands exactly what its
// quote promised. Completion is immediate, there is no pending window.
func ExecuteSwap(w http.ResponseWriter, r *http.Request) {
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
		log.Error().Err(err).Msg("swap error")
		responseError(w, fmt.Sprintf("Swap execution failed: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC()
	tx := &types.Transaction{
		ID:          uuid.New().String(),
		UserAddress: req.UserAddress,
		FromChain:   req.FromChain,
		ToChain:     req.ToChain,
		FromToken:   req.FromToken,
		ToToken:     req.ToToken,
		FromAmount:  req.Amount,
		ToAmount:    q.ToAmount,
		Status:      types.TxStatusCompleted,
		CreatedAt:   now,
		CompletedAt: &now,
	}
	tx.TxHash = simulatedTxHash(tx.ID)

	if err := Store.SaveTransaction(tx); err != nil {
		log.Error().Err(err).Str("user", req.UserAddress).Msg("error storing transaction")
		responseError(w, fmt.Sprintf("Swap execution failed: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("id", tx.ID).
		Str("user", tx.UserAddress).
		Str("from", tx.FromChain+":"+tx.FromToken).
		Str("to", tx.ToChain+":"+tx.ToToken).
		Msg("swap executed")

	Hub.Broadcast(&transactionEvent{Type: "transaction_completed", Transaction: tx})

	responseJSON(w, &APISwapResponse{
		TransactionID: tx.ID,
		Status:        tx.Status,
		TxHash:        tx.TxHash,
		FromAmount:    tx.FromAmount,
		ToAmount:      tx.ToAmount,
	}, http.StatusOK)
}

// last 12 characters of the de-dashed record id, hex-prefixed
func simulatedTxHash(id string) string {
	h := strings.ReplaceAll(id, "-", "")
	if len(h) > 12 {
		h = h[len(h)-12:]
	}
	return "0x" + h
}
