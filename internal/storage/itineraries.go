package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/neexbeast/goa-trips/internal/travel"
)

const itineraryColumns = `id, trip_name, start_date, end_date,
	destination_ids::text[], budget, duration, created_at`

func scanItinerary(row rowScanner) (travel.Itinerary, error) {
	var (
		it   travel.Itinerary
		refs []string
	)
	if err := row.Scan(
		&it.ID,
		&it.TripName,
		&it.StartDate,
		&it.EndDate,
		&refs,
		&it.Budget,
		&it.Duration,
		&it.CreatedAt,
	); err != nil {
		return it, err
	}

	ids, err := travel.ParseIDs(refs)
	if err != nil {
		return it, fmt.Errorf("decoding destination references of itinerary %s: %w", it.ID, err)
	}
	it.Destinations = ids
	return it, nil
}

// ListItineraries returns up to 100 itineraries, newest first. Destination
// references are left unexpanded.
func (r *Repository) ListItineraries(ctx context.Context) ([]travel.Itinerary, error) {
	q := "SELECT " + itineraryColumns + " FROM itineraries ORDER BY created_at DESC" +
		fmt.Sprintf(" LIMIT %d", listLimit)

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying itineraries: %w", err)
	}
	defer rows.Close()

	results := make([]travel.Itinerary, 0)
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning itinerary row: %w", err)
		}
		results = append(results, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating itinerary rows: %w", err)
	}

	return results, nil
}

// GetItinerary retrieves an itinerary with its destinations expanded into
// full records, fetched in one batched lookup.
func (r *Repository) GetItinerary(ctx context.Context, id travel.ID) (*travel.ExpandedItinerary, error) {
	const q = `SELECT ` + itineraryColumns + ` FROM itineraries WHERE id = $1`

	it, err := scanItinerary(r.q.QueryRow(ctx, q, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("itinerary %s: %w", id, travel.ErrNotFound)
		}
		return nil, fmt.Errorf("querying itinerary %s: %w", id, err)
	}

	var records []travel.Destination
	if refs := distinct(it.Destinations); len(refs) > 0 {
		records, err = r.destinationsByIDs(ctx, refs)
		if err != nil {
			return nil, fmt.Errorf("expanding itinerary %s: %w", id, err)
		}
	}

	expanded := it.Expand(records)
	return &expanded, nil
}

// CreateItinerary validates the referenced destinations and stores a new
// itinerary with its computed duration.
//
// Malformed references fail with travel.ErrInvalidID before the store is
// touched. Every distinct reference must then resolve to an existing
// destination, otherwise the call fails with travel.ErrMissingDestination.
// The check and the insert are not atomic.
func (r *Repository) CreateItinerary(ctx context.Context, in travel.ItineraryInput) (*travel.Itinerary, error) {
	ids, err := travel.ParseIDs(in.Destinations)
	if err != nil {
		return nil, fmt.Errorf("validating destination references: %w", err)
	}

	if refs := distinct(ids); len(refs) > 0 {
		n, err := r.countDestinations(ctx, refs)
		if err != nil {
			return nil, fmt.Errorf("validating destination references: %w", err)
		}
		if n != len(refs) {
			return nil, fmt.Errorf("%d of %d referenced destinations exist: %w",
				n, len(refs), travel.ErrMissingDestination)
		}
	}

	const q = `
		INSERT INTO itineraries
			(trip_name, start_date, end_date, destination_ids, budget, duration, created_at)
		VALUES ($1, $2, $3, $4::uuid[], $5, $6, NOW())
		RETURNING ` + itineraryColumns

	it, err := scanItinerary(r.q.QueryRow(ctx, q,
		in.TripName,
		in.StartDate,
		in.EndDate,
		travel.Strings(ids),
		in.Budget,
		travel.Duration(in.StartDate, in.EndDate),
	))
	if err != nil {
		return nil, fmt.Errorf("inserting itinerary %q: %w", in.TripName, err)
	}

	return &it, nil
}

// DeleteItinerary removes the itinerary with the given id.
// Returns an error wrapping travel.ErrNotFound when nothing was deleted.
func (r *Repository) DeleteItinerary(ctx context.Context, id travel.ID) error {
	const q = `DELETE FROM itineraries WHERE id = $1`

	tag, err := r.q.Exec(ctx, q, id.String())
	if err != nil {
		return fmt.Errorf("deleting itinerary %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("itinerary %s: %w", id, travel.ErrNotFound)
	}

	return nil
}

// distinct returns ids without repeats, keeping first occurrences in order.
func distinct(ids []travel.ID) []travel.ID {
	seen := make(map[travel.ID]struct{}, len(ids))
	out := make([]travel.ID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
