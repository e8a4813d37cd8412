package api

import (
	"context"

	"github.com/neexbeast/goa-trips/internal/travel"
)

// DestinationRepo defines the destination storage operations needed by handlers.
type DestinationRepo interface {
	ListDestinations(ctx context.Context, f travel.DestinationFilter) ([]travel.Destination, error)
	GetDestination(ctx context.Context, id travel.ID) (*travel.Destination, error)
	CreateDestination(ctx context.Context, in travel.DestinationInput) (*travel.Destination, error)
}

// ItineraryRepo defines the itinerary storage operations needed by handlers.
type ItineraryRepo interface {
	ListItineraries(ctx context.Context) ([]travel.Itinerary, error)
	GetItinerary(ctx context.Context, id travel.ID) (*travel.ExpandedItinerary, error)
	CreateItinerary(ctx context.Context, in travel.ItineraryInput) (*travel.Itinerary, error)
	DeleteItinerary(ctx context.Context, id travel.ID) error
}

// DestinationCache defines the cache operations needed by handlers.
// A nil DestinationCache disables caching.
type DestinationCache interface {
	Get(ctx context.Context, id travel.ID) (*travel.Destination, error)
	Set(ctx context.Context, d *travel.Destination) error
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
