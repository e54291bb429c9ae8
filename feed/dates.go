package feed

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange expands two YYYY-MM-DD strings into the inclusive sequence of
// midnight-UTC dates between them. Inverted or unparseable ranges fail.
func DateRange(start, end string) ([]time.Time, error) {
	t0, err := time.ParseInLocation(dateLayout, start, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("bad start date %q: %w", start, err)
	}
	t1, err := time.ParseInLocation(dateLayout, end, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("bad end date %q: %w", end, err)
	}
	if t1.Before(t0) {
		return nil, fmt.Errorf("end date %s before start date %s", end, start)
	}

	var dates []time.Time
	for t := t0; !t.After(t1); t = t.AddDate(0, 0, 1) {
		dates = append(dates, t)
	}
	return dates, nil
}
