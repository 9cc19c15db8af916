package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"personal-kanban/internal/handlers"
	"personal-kanban/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	BoardService service.BoardService
	Store        handlers.Pinger
	Backend      string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	boardHandler := handlers.NewBoardHandler(deps.BoardService)
	healthHandler := handlers.NewHealthHandler(deps.Store, deps.Backend)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Get("/board", boardHandler.GetBoard)
		r.Get("/export", boardHandler.Export)
		r.Post("/import", boardHandler.Import)

		r.Route("/cards", func(r chi.Router) {
			r.Post("/", boardHandler.CreateCard)
			r.Get("/{id}", boardHandler.GetCard)
			r.Put("/{id}", boardHandler.UpdateCard)
			r.Delete("/{id}", boardHandler.DeleteCard)
			r.Post("/{id}/move", boardHandler.MoveCard)
		})

		r.Route("/categories/{idx}", func(r chi.Router) {
			r.Put("/", boardHandler.RenameCategory)
			r.Delete("/", boardHandler.RemoveCategory)
			r.Post("/insert", boardHandler.InsertCategory)
			r.Post("/collapse", boardHandler.ToggleCollapse)
		})

		r.Post("/history/undo", boardHandler.Undo)
		r.Post("/history/redo", boardHandler.Redo)
	})

	return r
}
