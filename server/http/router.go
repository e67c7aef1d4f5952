package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"menu-service/internal/config"
	"menu-service/internal/menu"
	menuHnd "menu-service/internal/menu/handler"
	"menu-service/internal/middleware"
	"menu-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, store *menu.Store) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(cfg.MaxUploadBytes()))

	r.Get("/health", handlers.Health)

	h := menuHnd.New(cfg, store)
	r.Route("/menus", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Post("/flatten", h.Flatten)
		r.Post("/import", h.Import)
		r.Get("/{id}", h.Get)
		r.Get("/{id}/dishes", h.Dishes)
	})
	r.Post("/search/match", h.Match)

	return r
}
