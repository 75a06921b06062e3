package httpserver

import (
	"net/http"
	"time"

	"wedding-rsvp-go/internal/config"
	"wedding-rsvp-go/internal/transport/httpserver/handler"
	"wedding-rsvp-go/internal/transport/httpserver/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Get("/themes", handlers.ListThemes)

		r.Route("/weddings", func(r chi.Router) {
			r.Get("/", handlers.ListWeddings)
			r.Post("/", handlers.CreateWedding)
			r.Get("/active", handlers.GetActiveWedding)
			r.Delete("/active", handlers.ClearActiveWedding)

			r.Route("/{wedding_id}", func(r chi.Router) {
				r.Get("/", handlers.GetWedding)
				r.Patch("/", handlers.UpdateWedding)
				r.Delete("/", handlers.DeleteWedding)
				r.Post("/activate", handlers.ActivateWedding)
				r.Patch("/customization", handlers.UpdateCustomization)
				r.Put("/templates/email", handlers.UpdateEmailTemplate)
				r.Put("/templates/sms", handlers.UpdateSMSTemplate)
				r.Get("/templates/preview", handlers.PreviewTemplate)

				r.Post("/questions", handlers.AddQuestion)
				r.Patch("/questions/{question_id}", handlers.UpdateQuestion)
				r.Delete("/questions/{question_id}", handlers.DeleteQuestion)

				r.Get("/guests", handlers.ListGuests)
				r.Post("/guests", handlers.AddGuest)
				r.Delete("/guests/{guest_id}", handlers.DeleteGuest)
				r.Post("/guests/import/preview", handlers.PreviewImport)
				r.Post("/guests/import", handlers.ConfirmImport)

				r.Post("/invitations", handlers.SendInvitations)
				r.Get("/stats", handlers.GuestStats)
			})
		})

		r.Route("/rsvp", func(r chi.Router) {
			r.Get("/{code}", handlers.GetRSVPWedding)
			r.Post("/{code}/sessions", handlers.OpenRSVPSession)

			r.Route("/sessions/{session_id}", func(r chi.Router) {
				r.Get("/", handlers.GetRSVPSession)
				r.Delete("/", handlers.CloseRSVPSession)
				r.Get("/guests", handlers.SearchRSVPGuests)
				r.Post("/select", handlers.SelectRSVPGuest)
				r.Put("/answers", handlers.SetRSVPAnswer)
				r.Post("/back", handlers.BackRSVPSession)
				r.Post("/submit", handlers.SubmitRSVP)
			})
		})
	})

	return r
}
