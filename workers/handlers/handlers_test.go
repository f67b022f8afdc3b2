package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedTxHash(t *testing.T) {
	hash := simulatedTxHash("123e4567-e89b-12d3-a456-426614174000")
	assert.Equal(t, "0x426614174000", hash)

	short := simulatedTxHash("abc")
	assert.Equal(t, "0xabc", short)
}

func TestResponseErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	responseError(rec, "Token not found", http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "Token not found", apiErr.Detail)
}

func TestDecodeSwapRequestDefaults(t *testing.T) {
	body := `{"from_chain":"ethereum","to_chain":"solana","from_token":"ETH","to_token":"SOL","amount":"1.0","user_address":"u1"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(body))

	parsed, ok := decodeSwapRequest(rec, req)
	require.True(t, ok)
	assert.Equal(t, 0.5, parsed.SlippagePercent())
	assert.Equal(t, "u1", parsed.UserAddress)
}

func TestDecodeSwapRequestBadJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader("{not json"))

	_, ok := decodeSwapRequest(rec, req)
	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
