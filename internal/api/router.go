package api

import (
	"net/http"

	"github.com/arjun/cybercafe-backend/internal/api/handlers"
	"github.com/arjun/cybercafe-backend/internal/api/middleware"
	"github.com/arjun/cybercafe-backend/internal/service"
	"github.com/arjun/cybercafe-backend/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, hub *websocket.Hub, log *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	sessionHandler := handlers.NewSessionHandler(services.Session, hub)
	computerHandler := handlers.NewComputerHandler(services.Computer)
	maintenanceHandler := handlers.NewMaintenanceHandler(services.Maintenance, hub)
	reportHandler := handlers.NewReportHandler(services.Report)
	inventoryHandler := handlers.NewInventoryHandler(services.Inventory)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Auth, log)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			// Session routes
			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", sessionHandler.Start)
				r.Get("/open", sessionHandler.ListOpen)
				r.Post("/{id}/end", sessionHandler.End)
			})

			// Computer routes
			r.Route("/computers", func(r chi.Router) {
				r.Get("/", computerHandler.List)
				r.Get("/available", computerHandler.ListAvailable)
				r.Post("/{id}/maintenance", maintenanceHandler.Schedule)
				r.Post("/{id}/maintenance/complete", maintenanceHandler.Complete)
			})

			// Maintenance history
			r.Get("/maintenance/history", maintenanceHandler.History)

			// Report routes
			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily-usage", reportHandler.DailyUsage)
				r.Get("/usage-per-computer", reportHandler.UsagePerComputer)
				r.Get("/dashboard", reportHandler.Dashboard)
			})

			// Inventory routes
			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", inventoryHandler.List)
				r.Post("/", inventoryHandler.Create)
				r.Patch("/{id}/quantity", inventoryHandler.UpdateQuantity)
			})
		})

		// WebSocket endpoint
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
