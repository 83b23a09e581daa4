/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to
  handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/employees/*    Employee management, per-employee views
  /api/attendance/*   Clock in/out, active sessions
  /api/sessions/*     Session corrections
  /api/leave*         Leave records and balances
  /api/shifts         Monthly shift assignments

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Employee routes
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Put("/{id}", h.UpdateEmployee)
			r.Post("/{id}/resign", h.ResignEmployee)
			r.Get("/{id}/sessions", h.ListSessions)
			r.Get("/{id}/report", h.SessionReport)
			r.Get("/{id}/leave", h.ListLeave)
			r.Get("/{id}/leave-balance", h.GetBalance)
			r.Get("/{id}/shifts", h.GetShifts)
		})

		// Attendance routes
		r.Route("/attendance", func(r chi.Router) {
			r.Post("/clock-in", h.ClockIn)
			r.Post("/clock-out", h.ClockOut)
			r.Get("/active", h.ActiveSessions)
		})

		// Session corrections
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.CreateSession)
			r.Patch("/{id}", h.UpdateSession)
			r.Delete("/{id}", h.DeleteSession)
		})

		// Leave routes
		r.Route("/leave", func(r chi.Router) {
			r.Post("/", h.CreateLeave)
			r.Put("/{id}", h.UpdateLeave)
			r.Delete("/{id}", h.DeleteLeave)
		})
		r.Get("/leave-balances", h.ListBalances)

		// Shift assignments
		r.Put("/shifts", h.SaveShifts)
	})

	return r
}
