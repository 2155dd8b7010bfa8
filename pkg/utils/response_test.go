package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithError(w, http.StatusUnauthorized, "Unauthorized")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Unauthorized", resp.Message)
}

func TestRespondWithValidationError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithValidationError(w, []FieldError{{Field: "newPassword", Rule: "min"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ValidationResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Equal(t, []FieldError{{Field: "newPassword", Rule: "min"}}, resp.Errors)
}
