package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mael/portfolio-showcase/internal/api/handlers"
	"github.com/mael/portfolio-showcase/internal/api/middleware"
	"github.com/mael/portfolio-showcase/internal/config"
	"github.com/mael/portfolio-showcase/internal/service"
	"github.com/mael/portfolio-showcase/internal/websocket"
)

func NewRouter(services *service.Services, hub *websocket.Hub, cfg *config.Config, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(requestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Auth)
	projectHandler := handlers.NewProjectHandler(services.Project, services.Auth)
	listingHandler := handlers.NewListingHandler(services.Catalog, services.Project)
	pageStateHandler := handlers.NewPageStateHandler(services.Catalog)
	wsHandler := handlers.NewWebSocketHandler(hub, log)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
				r.Put("/profile", authHandler.UpdateProfile)
			})
		})

		// Public listing + detail
		r.Get("/projects", listingHandler.Home)
		r.Get("/projects/{id}", projectHandler.Get)
		r.Get("/meta/tags", projectHandler.Tags)
		r.Get("/meta/modules", projectHandler.Modules)

		// Protected mutations and personal views
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Get("/favorites", listingHandler.Favorites)
			r.Get("/profile/projects", listingHandler.OwnedProjects)

			r.Post("/projects", projectHandler.Create)
			r.Put("/projects/{id}", projectHandler.Update)
			r.Post("/projects/{id}/favorite", projectHandler.ToggleFavorite)
			r.Post("/projects/{id}/delete-request", projectHandler.RequestDelete)
			r.Post("/projects/delete-confirm", projectHandler.ConfirmDelete)
			r.Post("/projects/delete-cancel", projectHandler.CancelDelete)
		})

		// Page state is per deployment context, like the session; no auth
		// needed to read or reset a view's transient state.
		r.Route("/pagestate/{page}", func(r chi.Router) {
			r.Get("/", pageStateHandler.Get)
			r.Patch("/", pageStateHandler.Save)
			r.Delete("/", pageStateHandler.Reset)
		})

		r.Get("/ws", wsHandler.Handle)
	})

	return r
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Debug("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
			)
		})
	}
}
