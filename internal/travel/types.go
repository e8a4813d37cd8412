package travel

import "time"

// Destination is a place a trip can visit.
type Destination struct {
	ID          ID        `json:"_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`
	Activities  []string  `json:"activities"`
	BestTime    string    `json:"bestTime"`
	Price       string    `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DestinationInput carries the client-supplied attributes of a new destination.
type DestinationInput struct {
	Name        string
	Location    string
	Description string
	Image       string
	Rating      float64
	Activities  []string
	BestTime    string
	Price       string
}

// DestinationFilter narrows a destination listing. Zero fields are ignored.
type DestinationFilter struct {
	// Location must equal the destination's location exactly.
	Location string
	// Search is matched case-insensitively as a substring of name,
	// location or description.
	Search string
}

// Itinerary is a stored trip. Destinations holds references, not records.
type Itinerary struct {
	ID           ID        `json:"_id"`
	TripName     string    `json:"tripName"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Destinations []ID      `json:"destinations"`
	Budget       string    `json:"budget"`
	Duration     string    `json:"duration"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ExpandedItinerary is an Itinerary whose destination references have been
// replaced with the records they point to.
type ExpandedItinerary struct {
	ID           ID            `json:"_id"`
	TripName     string        `json:"tripName"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	Destinations []Destination `json:"destinations"`
	Budget       string        `json:"budget"`
	Duration     string        `json:"duration"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// ItineraryInput carries the client-supplied attributes of a new itinerary.
// Destinations are unparsed identifier strings.
type ItineraryInput struct {
	TripName     string
	StartDate    string
	EndDate      string
	Destinations []string
	Budget       string
}

// Expand pairs it with already-fetched destination records, keeping the
// itinerary's reference order. References with no matching record are dropped.
func (it Itinerary) Expand(records []Destination) ExpandedItinerary {
	byID := make(map[ID]Destination, len(records))
	for _, d := range records {
		byID[d.ID] = d
	}

	dests := make([]Destination, 0, len(it.Destinations))
	for _, ref := range it.Destinations {
		if d, ok := byID[ref]; ok {
			dests = append(dests, d)
		}
	}

	return ExpandedItinerary{
		ID:           it.ID,
		TripName:     it.TripName,
		StartDate:    it.StartDate,
		EndDate:      it.EndDate,
		Destinations: dests,
		Budget:       it.Budget,
		Duration:     it.Duration,
		CreatedAt:    it.CreatedAt,
	}
}
