package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/simonkvalheim/bankist/internal/auth"
	"github.com/simonkvalheim/bankist/internal/middleware"
	"github.com/simonkvalheim/bankist/internal/session"
)

// NewRouter wires every handler onto a chi router
func NewRouter(ledger *Ledger, authService *auth.Service, cors middleware.CORSConfig) http.Handler {
	sessionHandler := NewSessionHandler(ledger, authService)
	accountHandler := NewAccountHandler(ledger)
	transferHandler := NewTransferHandler(ledger)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	r := chi.NewRouter()

	r.Use(middleware.CORS(cors))
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)    // Logs each request
	r.Use(chimiddleware.Recoverer) // Recovers from panics gracefully

	// Health check (no auth needed)
	r.Get("/health", healthHandler(ledger))

	sessionHandler.RegisterRoutes(r)

	r.Route("/v1", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		sessionHandler.RegisterProtectedRoutes(r)
		accountHandler.RegisterRoutes(r)
		transferHandler.RegisterRoutes(r)
	})

	return r
}

// healthHandler reports the size of the directory and the session state
func healthHandler(ledger *Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var accounts int
		var total string
		var state session.State
		ledger.Do(func(c *session.Controller) error {
			accounts = c.Directory().Len()
			total = c.Directory().TotalBalance().StringFixed(2)
			state = c.State()
			return nil
		})

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":        "healthy",
			"accounts":      accounts,
			"total_balance": total,
			"session":       state,
		})
	}
}
