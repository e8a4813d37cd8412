package travel

import (
	"fmt"
	"math"
	"time"
)

// dateLayouts are tried in order when parsing itinerary dates.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// Duration returns the inclusive number of days between start and end,
// formatted as "1 day" or "N days". It returns "" if either date is unparseable.
func Duration(start, end string) string {
	s, err := parseDate(start)
	if err != nil {
		return ""
	}
	e, err := parseDate(end)
	if err != nil {
		return ""
	}

	days := int(math.Floor(e.Sub(s).Hours()/24)) + 1
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
