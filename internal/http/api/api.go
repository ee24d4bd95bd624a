// Package api holds the JSON helpers and response types shared by the
// versioned handlers.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/paygrow/internal/account"
	"github.com/MrJamesThe3rd/paygrow/internal/auth"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
)

const (
	MsgInvalidInput        = "Please enter a valid amount and vendor."
	MsgInsufficientFunds   = "Insufficient funds for this transaction and boosted saving."
	MsgInsufficientSavings = "Withdrawal amount cannot exceed your total savings."
	MsgNotFound            = "Account not found. Please sign in again."
	MsgPersistence         = "Could not save your changes. Please try again."
	MsgInternal            = "Something went wrong. Please try again."
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Error(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}

	JSON(w, status, resp)
}

// FromError writes the status and message matching a domain error.
func FromError(w http.ResponseWriter, err error) {
	var verr *auth.ValidationError

	switch {
	case errors.As(err, &verr):
		Error(w, http.StatusBadRequest, verr.Message, nil)
	case errors.Is(err, account.ErrInvalidInput):
		Error(w, http.StatusBadRequest, MsgInvalidInput, err)
	case errors.Is(err, account.ErrInsufficientFunds):
		Error(w, http.StatusUnprocessableEntity, MsgInsufficientFunds, err)
	case errors.Is(err, account.ErrInsufficientSavings):
		Error(w, http.StatusUnprocessableEntity, MsgInsufficientSavings, err)
	case errors.Is(err, session.ErrNotFound):
		Error(w, http.StatusNotFound, MsgNotFound, nil)
	case errors.Is(err, session.ErrPersistence):
		slog.Error("persistence failure", "error", err)
		Error(w, http.StatusInternalServerError, MsgPersistence, nil)
	default:
		slog.Error("request failed", "error", err)
		Error(w, http.StatusInternalServerError, MsgInternal, nil)
	}
}

// Session returns the live session of the signed-in phone, writing the
// error response itself when there is none.
func Session(w http.ResponseWriter, r *http.Request, sessions *session.Service) (*session.Session, bool) {
	phone, ok := auth.PhoneFromContext(r.Context())
	if !ok {
		Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return nil, false
	}

	sess, err := sessions.Restore(r.Context(), phone)
	if err != nil {
		FromError(w, err)
		return nil, false
	}

	return sess, true
}

// Decode reads a JSON request body into v.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body", err)
		return false
	}

	return true
}
