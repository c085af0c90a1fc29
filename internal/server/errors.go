package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rgehrsitz/rptax/internal/domain"
)

const codeInternal = "INTERNAL"

// errorEnvelope is the JSON body of every failed request
type errorEnvelope struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// statusFor maps a domain error code onto an HTTP status
func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeMalformedInput:
		return http.StatusBadRequest
	case domain.CodeRangeViolation:
		return http.StatusUnprocessableEntity
	case domain.CodeConfigurationMismatch:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	env := errorEnvelope{
		Code:      codeInternal,
		Message:   "internal error",
		RequestID: middleware.GetReqID(r.Context()),
	}
	status := http.StatusInternalServerError

	var te *domain.TaxError
	if errors.As(err, &te) {
		env.Code = string(te.Code)
		env.Message = te.Message
		env.Field = te.Field
		status = statusFor(te.Code)
	}
	writeJSON(w, status, env)
}
