package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/neexbeast/goa-trips/internal/travel"
)

const destinationColumns = `id, name, location, description, image, rating,
	activities, best_time, price, created_at, updated_at`

// likeEscaper neutralises LIKE metacharacters so search text matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanDestination(row rowScanner) (travel.Destination, error) {
	var d travel.Destination
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Location,
		&d.Description,
		&d.Image,
		&d.Rating,
		&d.Activities,
		&d.BestTime,
		&d.Price,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if d.Activities == nil {
		d.Activities = []string{}
	}
	return d, err
}

func collectDestinations(rows pgx.Rows) ([]travel.Destination, error) {
	defer rows.Close()

	results := make([]travel.Destination, 0)
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning destination row: %w", err)
		}
		results = append(results, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating destination rows: %w", err)
	}

	return results, nil
}

// ListDestinations returns up to 100 destinations matching f.
func (r *Repository) ListDestinations(ctx context.Context, f travel.DestinationFilter) ([]travel.Destination, error) {
	var (
		conds []string
		args  []any
	)

	if f.Location != "" {
		args = append(args, f.Location)
		conds = append(conds, fmt.Sprintf("location = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(f.Search)+"%")
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE $%[1]d OR location ILIKE $%[1]d OR description ILIKE $%[1]d)", len(args)))
	}

	q := "SELECT " + destinationColumns + " FROM destinations"
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += fmt.Sprintf(" ORDER BY created_at, id LIMIT %d", listLimit)

	rows, err := r.q.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying destinations: %w", err)
	}

	return collectDestinations(rows)
}

// GetDestination retrieves a destination by id.
// Returns an error wrapping travel.ErrNotFound when no row matches.
func (r *Repository) GetDestination(ctx context.Context, id travel.ID) (*travel.Destination, error) {
	const q = `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`

	d, err := scanDestination(r.q.QueryRow(ctx, q, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("destination %s: %w", id, travel.ErrNotFound)
		}
		return nil, fmt.Errorf("querying destination %s: %w", id, err)
	}

	return &d, nil
}

// CreateDestination inserts a destination. The store assigns the id and
// sets both timestamps to the current time.
func (r *Repository) CreateDestination(ctx context.Context, in travel.DestinationInput) (*travel.Destination, error) {
	const q = `
		INSERT INTO destinations
			(name, location, description, image, rating, activities, best_time, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + destinationColumns

	activities := in.Activities
	if activities == nil {
		activities = []string{}
	}

	d, err := scanDestination(r.q.QueryRow(ctx, q,
		in.Name,
		in.Location,
		in.Description,
		in.Image,
		in.Rating,
		activities,
		in.BestTime,
		in.Price,
	))
	if err != nil {
		return nil, fmt.Errorf("inserting destination %q: %w", in.Name, err)
	}

	return &d, nil
}

// destinationsByIDs fetches the destinations whose ids are in ids, in a
// single round trip. Result order is whatever the store returns.
func (r *Repository) destinationsByIDs(ctx context.Context, ids []travel.ID) ([]travel.Destination, error) {
	q := "SELECT " + destinationColumns + " FROM destinations WHERE id = ANY($1::uuid[])" +
		fmt.Sprintf(" LIMIT %d", listLimit)

	rows, err := r.q.Query(ctx, q, travel.Strings(ids))
	if err != nil {
		return nil, fmt.Errorf("querying destinations by id: %w", err)
	}

	return collectDestinations(rows)
}

// countDestinations reports how many of ids exist. ids must be distinct.
func (r *Repository) countDestinations(ctx context.Context, ids []travel.ID) (int, error) {
	const q = `SELECT COUNT(*) FROM destinations WHERE id = ANY($1::uuid[])`

	var n int64
	if err := r.q.QueryRow(ctx, q, travel.Strings(ids)).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting destinations: %w", err)
	}
	return int(n), nil
}
