package handler

import (
	"net/http"
)

// ListCities handles GET /cities.
func (s *Server) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := s.catalog.ListCities(r.Context())
	if err != nil {
		s.serviceError(w, r, err, "city not found")
		return
	}
	out := make([]cityResponse, len(cities))
	for i, c := range cities {
		out[i] = cityToResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetCity handles GET /cities/{cityID}.
func (s *Server) GetCity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "cityID")
	if !ok {
		return
	}
	city, err := s.catalog.GetCity(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err, "city not found")
		return
	}
	writeJSON(w, http.StatusOK, cityToResponse(city))
}

// ListAttractions handles GET /cities/{cityID}/attractions.
func (s *Server) ListAttractions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "cityID")
	if !ok {
		return
	}
	attractions, err := s.catalog.ListAttractions(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err, "city not found")
		return
	}
	writeJSON(w, http.StatusOK, attractionsToResponse(attractions))
}

// GetCityWeather handles GET /cities/{cityID}/weather.
func (s *Server) GetCityWeather(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "cityID")
	if !ok {
		return
	}
	obs, err := s.catalog.CityWeather(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err, "city not found")
		return
	}
	writeJSON(w, http.StatusOK, obs)
}
