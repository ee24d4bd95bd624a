package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/paygrow/internal/http/account"
	authhttp "github.com/MrJamesThe3rd/paygrow/internal/http/auth"
	"github.com/MrJamesThe3rd/paygrow/internal/http/insight"
)

// Authenticator wraps handlers that require a signed-in phone.
type Authenticator interface {
	Middleware(next http.Handler) http.Handler
}

func New(
	authV1 *authhttp.Handler,
	accountV1 *account.Handler,
	insightV1 *insight.Handler,
	authenticator Authenticator,
	metrics http.Handler,
	corsOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Handle("/metrics", metrics)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator.Middleware)
			accountV1.Routes(r)
			r.Route("/insights", insightV1.Routes)
		})
	})

	return router
}
