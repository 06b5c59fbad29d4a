package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"cotisation-service/internal/handler"
	"cotisation-service/internal/ws"
)

func SetupRoutes(
	r chi.Router,
	onboarding *handler.OnboardingHandler,
	auth *handler.AuthHandler,
	admin *handler.AdminHandler,
	hub *ws.Hub,
) chi.Router {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/onboarding", func(ob chi.Router) {
		ob.Post("/start", onboarding.Start)
		ob.Post("/profile", onboarding.SubmitProfile)
		ob.Post("/otp/send", onboarding.SendOtp)
		ob.Post("/otp/digit", onboarding.SetDigit)
		ob.Post("/otp/backspace", onboarding.Backspace)
		ob.Post("/otp/paste", onboarding.Paste)
		ob.Post("/otp/verify", onboarding.VerifyOtp)
		ob.Post("/contribution", onboarding.SubmitContribution)
		ob.Post("/back", onboarding.Back)
		ob.Get("/summary", onboarding.Summary)
	})

	r.Route("/auth", func(a chi.Router) {
		a.Post("/login", auth.Login)
		a.Post("/logout", auth.Logout)
	})
	r.Get("/session", auth.Session)

	r.Get("/banks", admin.Banks)
	r.Get("/admin/dashboard", admin.Dashboard)

	r.Get("/ws/toasts", hub.ServeWS)

	return r
}
