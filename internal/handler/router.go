package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouterOptions carries the middleware NewRouter applies to route groups.
type RouterOptions struct {
	// Authenticate guards every /itineraries route. Required.
	Authenticate func(http.Handler) http.Handler
	// WeatherLimit throttles the weather proxy routes. Nil means unlimited.
	WeatherLimit func(http.Handler) http.Handler
}

// NewRouter mounts every API route on a fresh chi router. Cross-cutting
// middleware (request ID, logging, CORS, body limits) is applied by the caller.
func NewRouter(s *Server, opts RouterOptions) chi.Router {
	limit := opts.WeatherLimit
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}

	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/cities", func(r chi.Router) {
		r.Get("/", s.ListCities)
		r.Route("/{cityID}", func(r chi.Router) {
			r.Get("/", s.GetCity)
			r.Get("/attractions", s.ListAttractions)
			r.With(limit).Get("/weather", s.GetCityWeather)
		})
	})
	r.With(limit).Get("/weather", s.GetWeather)

	r.Route("/itineraries", func(r chi.Router) {
		r.Use(opts.Authenticate)
		r.Get("/", s.ListItineraries)
		r.Post("/", s.CreateItinerary)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetItinerary)
			r.Delete("/", s.DeleteItinerary)
			r.Get("/candidates", s.ListCandidates)
			r.Get("/export", s.ExportItinerary)
			r.Put("/items", s.ReplaceVisits)
			r.Post("/items", s.AddVisit)
			r.Patch("/items/{itemID}", s.MoveVisit)
			r.Delete("/items/{itemID}", s.RemoveVisit)
		})
	})
	return r
}
