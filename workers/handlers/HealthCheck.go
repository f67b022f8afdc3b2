package handlers

import (
	"net/http"
	"time"
)

type APIHealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	responseJSON(w, &APIHealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	}, http.StatusOK)
}
