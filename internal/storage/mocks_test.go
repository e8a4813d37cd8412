package storage_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/neexbeast/goa-trips/internal/travel"
)

// ---- mock Querier ----

type mockQuerier struct {
	queryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	queryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	execFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return m.queryRowFn(ctx, sql, args...)
}
func (m *mockQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return m.queryFn(ctx, sql, args...)
}
func (m *mockQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return m.execFn(ctx, sql, args...)
}

// assign copies row values into scan destinations by type.
func assign(dest []any, row []any) error {
	for i, d := range dest {
		if i >= len(row) {
			break
		}
		switch v := d.(type) {
		case *travel.ID:
			*v = row[i].(travel.ID)
		case *string:
			*v = row[i].(string)
		case *float64:
			*v = row[i].(float64)
		case *int64:
			*v = row[i].(int64)
		case *[]string:
			if row[i] == nil {
				*v = nil
			} else {
				*v = row[i].([]string)
			}
		case *time.Time:
			*v = row[i].(time.Time)
		default:
			return fmt.Errorf("fake scan: unsupported destination %T", d)
		}
	}
	return nil
}

// ---- mock pgx.Row ----

type fakeRow struct {
	scanFn func(dest ...any) error
}

func (f *fakeRow) Scan(dest ...any) error { return f.scanFn(dest...) }

func rowOf(values ...any) *fakeRow {
	return &fakeRow{scanFn: func(dest ...any) error { return assign(dest, values) }}
}

func errRow(err error) *fakeRow {
	return &fakeRow{scanFn: func(...any) error { return err }}
}

// ---- mock pgx.Rows ----

type fakeRows struct {
	rows    [][]any
	idx     int
	rowErr  error
	scanErr error
	closed  bool
}

func (f *fakeRows) Next() bool                                   { f.idx++; return f.idx <= len(f.rows) }
func (f *fakeRows) Err() error                                   { return f.rowErr }
func (f *fakeRows) Close()                                       { f.closed = true }
func (f *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (f *fakeRows) RawValues() [][]byte                          { return nil }
func (f *fakeRows) Conn() *pgx.Conn                              { return nil }

func (f *fakeRows) Scan(dest ...any) error {
	if f.scanErr != nil {
		return f.scanErr
	}
	return assign(dest, f.rows[f.idx-1])
}

// ---- mock SchemaPool ----

type mockSchemaPool struct {
	beginFn func(ctx context.Context) (pgx.Tx, error)
}

func (m *mockSchemaPool) Begin(ctx context.Context) (pgx.Tx, error) {
	return m.beginFn(ctx)
}

// mockTx is a minimal pgx.Tx implementation for testing schema application.
type mockTx struct {
	execFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	commitFn   func(ctx context.Context) error
	rollbackFn func(ctx context.Context) error
}

func (t *mockTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.execFn(ctx, sql, args...)
}
func (t *mockTx) Commit(ctx context.Context) error   { return t.commitFn(ctx) }
func (t *mockTx) Rollback(ctx context.Context) error { return t.rollbackFn(ctx) }

// pgx.Tx has many more methods; stub them all out.
func (t *mockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (t *mockTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *mockTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }
func (t *mockTx) LargeObjects() pgx.LargeObjects                             { return pgx.LargeObjects{} }
func (t *mockTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *mockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *mockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *mockTx) Conn() *pgx.Conn { return nil }

// ---- fixtures ----

var (
	fixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	palolemID = travel.MustParseID("11111111-1111-4111-8111-111111111111")
	anjunaID  = travel.MustParseID("22222222-2222-4222-8222-222222222222")
	tripID    = travel.MustParseID("99999999-9999-4999-8999-999999999999")
)

func destinationRow(id travel.ID, name, location string) []any {
	return []any{
		id, name, location, "a beach", "https://example.com/x.jpg", 4.8,
		[]string{"Swimming"}, "November to March", "₹₹", fixedTime, fixedTime,
	}
}

func itineraryRow(id travel.ID, refs ...travel.ID) []any {
	return []any{
		id, "Goa getaway", "2025-01-01", "2025-01-05",
		travel.Strings(refs), "₹20000", "5 days", fixedTime,
	}
}
