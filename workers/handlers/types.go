package handlers

import (
	"gosyncswap/realtime"
	"gosyncswap/types"
)

// TransactionStore is the persistence surface the handlers need. Satisfied by
// redis.Store; tests plug in an in-memory fake.
type TransactionStore interface {
	SaveTransaction(tx *types.Transaction) error
	UserTransactions(address string) ([]*types.Transaction, error)
}

// wired by main before the HTTP worker starts
var (
	Store TransactionStore
	Hub   *realtime.Hub
)

// error envelope, all non-2xx responses carry one
type APIError struct {
	Detail string `json:"detail"`
}
