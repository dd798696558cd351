package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/Nik0lakt/cafeteria-project/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Group(func(r chi.Router) {
			r.Use(mw.TerminalAuth)

			r.Route("/liveness/sessions", func(r chi.Router) {
				r.Post("/", h.StartLiveness)
				r.Post("/{id}/frames", h.SubmitFrame)
				r.Delete("/{id}", h.CancelLiveness)
			})

			r.Post("/payments", h.Pay)

			r.Get("/cards/{uid}/employee", h.Employee)
			r.Get("/cards/{uid}/balance", h.Balance)
			r.Get("/employees/{id}/transactions", h.Transactions)
		})

		r.Route("/private", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/faces", h.EnrollFace)
		})
	})

	return mux
}
