package travel

import (
	"fmt"

	"github.com/google/uuid"
)

// idLength is the length of the canonical hyphenated UUID form.
const idLength = 36

// ID identifies a stored destination or itinerary. The store generates it;
// clients only ever see its string form.
type ID struct {
	u uuid.UUID
}

// ParseID parses the canonical string form of an ID.
// Any other input yields an error wrapping ErrInvalidID.
func ParseID(s string) (ID, error) {
	if len(s) != idLength {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID{u: u}, nil
}

// ParseIDs parses every element of ss, stopping at the first malformed one.
func ParseIDs(ss []string) ([]ID, error) {
	ids := make([]ID, 0, len(ss))
	for _, s := range ss {
		id, err := ParseID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// MustParseID is ParseID for literals known to be valid. It panics otherwise.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) String() string { return id.u.String() }

// IsZero reports whether id was never assigned.
func (id ID) IsZero() bool { return id.u == uuid.Nil }

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.u.String()), nil
}

func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := ParseID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Scan implements sql.Scanner so uuid columns scan straight into an ID.
func (id *ID) Scan(src any) error {
	return id.u.Scan(src)
}

// Strings formats ids, preserving order.
func Strings(ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
