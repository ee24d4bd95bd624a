package insight

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/paygrow/internal/http/api"
	"github.com/MrJamesThe3rd/paygrow/internal/insight"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
)

type Handler struct {
	sessions *session.Service
}

func NewHandler(sessions *session.Service) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/investments", h.investments)
	r.Get("/rewards", h.rewards)
	r.Get("/savings-analysis", h.savingsAnalysis)
}

type analysisResponse struct {
	Analysis string `json:"analysis"`
}

func (h *Handler) investments(w http.ResponseWriter, r *http.Request) {
	sess, ok := api.Session(w, r, h.sessions)
	if !ok {
		return
	}

	out, err := sess.Investments(r.Context())
	if err != nil {
		api.Error(w, http.StatusServiceUnavailable, insight.MsgInvestmentsUnavailable, nil)
		return
	}

	api.JSON(w, http.StatusOK, out)
}

func (h *Handler) rewards(w http.ResponseWriter, r *http.Request) {
	sess, ok := api.Session(w, r, h.sessions)
	if !ok {
		return
	}

	out, err := sess.Rewards(r.Context())
	if err != nil {
		api.Error(w, http.StatusServiceUnavailable, insight.MsgRewardsUnavailable, nil)
		return
	}

	api.JSON(w, http.StatusOK, out)
}

func (h *Handler) savingsAnalysis(w http.ResponseWriter, r *http.Request) {
	sess, ok := api.Session(w, r, h.sessions)
	if !ok {
		return
	}

	text, err := sess.SavingsAnalysis(r.Context())
	if err != nil {
		api.Error(w, http.StatusServiceUnavailable, insight.MsgAnalysisUnavailable, nil)
		return
	}

	api.JSON(w, http.StatusOK, analysisResponse{Analysis: text})
}
