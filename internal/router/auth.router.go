package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"auth-service/internal/handler"
	"auth-service/pkg/middleware"
	"auth-service/pkg/response"
)

func SetupRoutes(
	r chi.Router,
	h *handler.AuthHandler,
	auth *middleware.AuthMiddleware,
	corsOrigin string,
) chi.Router {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusNotFound, "not found")
	})

	r.Route("/api/auth", func(api chi.Router) {
		// ---------------- Public ----------------
		api.Group(func(pub chi.Router) {
			pub.Get("/health", h.Health)
			pub.Post("/register", h.HandleRegister)
			// Login takes credentials, so it cannot sit behind the session
			// middleware; it is a plain unauthenticated POST.
			pub.Post("/login", h.HandleLogin)
			pub.Post("/logout", h.HandleLogout)
			pub.Post("/forget-password", h.HandleForgotPassword)
			pub.Post("/reset-password", h.HandleResetPassword)
		})

		// ---------------- Verification ----------------
		api.Group(func(g chi.Router) {
			g.Use(auth.Require)
			g.Post("/verify", h.HandleVerifyOTP)
			g.Post("/resendotp", h.HandleResendOTP)
		})
	})

	return r
}
