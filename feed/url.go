package feed

import (
	"fmt"
	"strings"
	"time"
)

const DefaultBaseURL = "https://datafeed.dukascopy.com/datafeed"

// TickURL builds the feed path for one hour of tick data.
// Dukascopy uses a zero-based month in the URL path: Jan=00 ... Dec=11.
// Day and hour keep their usual 1-based / 0-based conventions.
func TickURL(base, pair string, t time.Time) string {
	month0 := int(t.Month()) - 1
	return fmt.Sprintf("%s/%s/%04d/%02d/%02d/%02dh_ticks.bi5",
		strings.TrimRight(base, "/"),
		pair,
		t.Year(), month0, t.Day(), t.Hour())
}
