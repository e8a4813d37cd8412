package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/neexbeast/goa-trips/internal/travel"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	destinations DestinationRepo
	itineraries  ItineraryRepo
	cache        DestinationCache
	validate     *validator.Validate
	log          *slog.Logger
}

// NewHandlers constructs Handlers. cache may be nil.
func NewHandlers(destinations DestinationRepo, itineraries ItineraryRepo, cache DestinationCache, log *slog.Logger) *Handlers {
	return &Handlers{
		destinations: destinations,
		itineraries:  itineraries,
		cache:        cache,
		validate:     newValidator(),
		log:          log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// serverError logs err and answers 500 with a fixed detail message.
func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, detail string, err error) {
	h.log.Error(detail, "path", r.URL.Path, "err", err)
	writeError(w, http.StatusInternalServerError, detail)
}

// ListDestinations handles GET /api/destinations?location=&search=.
func (h *Handlers) ListDestinations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := travel.DestinationFilter{
		Location: query.Get("location"),
		Search:   query.Get("search"),
	}

	dests, err := h.destinations.ListDestinations(r.Context(), filter)
	if err != nil {
		h.serverError(w, r, "Error fetching destinations", err)
		return
	}

	writeJSON(w, http.StatusOK, dests)
}

// GetDestination handles GET /api/destinations/{id}.
// Cache hit → return. DB hit → cache + return. Neither → 404.
func (h *Handlers) GetDestination(w http.ResponseWriter, r *http.Request) {
	id, err := travel.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid destination ID")
		return
	}

	if h.cache != nil {
		cached, err := h.cache.Get(r.Context(), id)
		if err != nil {
			h.log.Error("cache get failed", "destination_id", id, "err", err)
		}
		if cached != nil {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	dest, err := h.destinations.GetDestination(r.Context(), id)
	switch {
	case errors.Is(err, travel.ErrNotFound):
		writeError(w, http.StatusNotFound, "Destination not found")
		return
	case err != nil:
		h.serverError(w, r, "Error fetching destination", err)
		return
	}

	h.remember(r, dest)
	writeJSON(w, http.StatusOK, dest)
}

// CreateDestination handles POST /api/destinations.
func (h *Handlers) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var req createDestinationRequest
	if err := decodeRequest(w, r, h.validate, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	dest, err := h.destinations.CreateDestination(r.Context(), req.input())
	if err != nil {
		h.serverError(w, r, "Error creating destination", err)
		return
	}

	h.log.Info("destination created", "destination_id", dest.ID, "name", dest.Name)
	h.remember(r, dest)
	writeJSON(w, http.StatusOK, dest)
}

// remember writes dest to the cache, if one is configured.
func (h *Handlers) remember(r *http.Request, dest *travel.Destination) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Set(r.Context(), dest); err != nil {
		h.log.Warn("cache set failed", "destination_id", dest.ID, "err", err)
	}
}

// ListItineraries handles GET /api/itineraries.
func (h *Handlers) ListItineraries(w http.ResponseWriter, r *http.Request) {
	its, err := h.itineraries.ListItineraries(r.Context())
	if err != nil {
		h.serverError(w, r, "Error fetching itineraries", err)
		return
	}

	writeJSON(w, http.StatusOK, its)
}

// GetItinerary handles GET /api/itineraries/{id}, expanding destinations.
func (h *Handlers) GetItinerary(w http.ResponseWriter, r *http.Request) {
	id, err := travel.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	it, err := h.itineraries.GetItinerary(r.Context(), id)
	switch {
	case errors.Is(err, travel.ErrNotFound):
		writeError(w, http.StatusNotFound, "Itinerary not found")
		return
	case err != nil:
		h.serverError(w, r, "Error fetching itinerary", err)
		return
	}

	writeJSON(w, http.StatusOK, it)
}

// CreateItinerary handles POST /api/itineraries.
func (h *Handlers) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var req createItineraryRequest
	if err := decodeRequest(w, r, h.validate, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	it, err := h.itineraries.CreateItinerary(r.Context(), req.input())
	switch {
	case errors.Is(err, travel.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "Invalid destination ID(s)")
		return
	case errors.Is(err, travel.ErrMissingDestination):
		writeError(w, http.StatusBadRequest, "One or more destinations not found")
		return
	case err != nil:
		h.serverError(w, r, "Error creating itinerary", err)
		return
	}

	h.log.Info("itinerary created", "itinerary_id", it.ID, "destinations", len(it.Destinations))
	writeJSON(w, http.StatusOK, it)
}

// DeleteItinerary handles DELETE /api/itineraries/{id}.
func (h *Handlers) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id, err := travel.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	err = h.itineraries.DeleteItinerary(r.Context(), id)
	switch {
	case errors.Is(err, travel.ErrNotFound):
		writeError(w, http.StatusNotFound, "Itinerary not found")
		return
	case err != nil:
		h.serverError(w, r, "Error deleting itinerary", err)
		return
	}

	h.log.Info("itinerary deleted", "itinerary_id", id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Itinerary deleted successfully"})
}
