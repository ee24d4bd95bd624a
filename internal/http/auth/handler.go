package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/paygrow/internal/auth"
	"github.com/MrJamesThe3rd/paygrow/internal/http/api"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
)

type Handler struct {
	sessions *session.Service
	issuer   *auth.Issuer
}

func NewHandler(sessions *session.Service, issuer *auth.Issuer) *Handler {
	return &Handler{sessions: sessions, issuer: issuer}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/otp", h.requestOTP)
	r.Post("/verify", h.verify)
	r.With(h.issuer.Middleware).Post("/logout", h.logout)
}

type otpResponse struct {
	Message string `json:"message"`
}

func (h *Handler) requestOTP(w http.ResponseWriter, r *http.Request) {
	var req auth.OTPRequest
	if !api.Decode(w, r, &req) {
		return
	}

	if err := auth.RequestOTP(req); err != nil {
		api.FromError(w, err)
		return
	}

	api.JSON(w, http.StatusAccepted, otpResponse{Message: "OTP sent to +91 " + req.Phone + "."})
}

type verifyResponse struct {
	Token   string              `json:"token"`
	Account api.AccountResponse `json:"account"`
}

// verify accepts any well-formed OTP and signs the phone up with a fresh account.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	var req auth.VerifyRequest
	if !api.Decode(w, r, &req) {
		return
	}

	if err := auth.VerifyOTP(req); err != nil {
		api.FromError(w, err)
		return
	}

	sess, err := h.sessions.Signup(r.Context(), session.SignupParams{
		Phone:          req.Phone,
		Name:           req.Name,
		BankAccountRef: req.BankAccount,
	})
	if err != nil {
		api.FromError(w, err)
		return
	}

	token, err := h.issuer.Issue(req.Phone)
	if err != nil {
		api.FromError(w, err)
		return
	}

	api.JSON(w, http.StatusCreated, verifyResponse{
		Token:   token,
		Account: api.ToAccount(sess.Snapshot().Account, sess.MultiplierAvailable()),
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if phone, ok := auth.PhoneFromContext(r.Context()); ok {
		h.sessions.Logout(phone)
	}

	w.WriteHeader(http.StatusNoContent)
}
