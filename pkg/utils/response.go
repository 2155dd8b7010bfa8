package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message" example:"Unauthorized"`
}

type FieldError struct {
	Field string `json:"field" example:"newPassword"`
	Rule  string `json:"rule" example:"min"`
}

type ValidationResponse struct {
	Message string       `json:"message" example:"Validation failed"`
	Errors  []FieldError `json:"errors"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

func RespondWithValidationError(w http.ResponseWriter, errs []FieldError) {
	RespondWithJSON(w, http.StatusBadRequest, ValidationResponse{
		Message: "Validation failed",
		Errors:  errs,
	})
}
