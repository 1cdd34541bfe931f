package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/selinamariefuchs/brain-trip-planner/internal/container"
)

// SetupRouter wires every API route. Server-wide middleware (logger,
// requestID, recoverer) is applied before mounting this router in main.go.
func SetupRouter(c *container.Container) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/quiz/generate", c.QuizHandler.Generate)

		r.Post("/suggestions/generate", c.SuggestionsHandler.Generate)
		r.Post("/suggestions/enrich-poi", c.SuggestionsHandler.EnrichPOI)

		r.Post("/geocode", c.CityHandler.Geocode)

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", c.TripsHandler.List)
			r.Post("/", c.TripsHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", c.TripsHandler.Get)
				r.Patch("/", c.TripsHandler.Update)
				r.Delete("/", c.TripsHandler.Delete)
				r.Post("/spots", c.TripsHandler.AddSpot)
				r.Delete("/spots/{spotId}", c.TripsHandler.DeleteSpot)
			})
		})
	})

	return r
}
