package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		pair string
		time time.Time
		want string
	}{
		{
			// January must come out as month 00, day stays 1-based.
			name: "january is month zero",
			base: DefaultBaseURL,
			pair: "EURUSD",
			time: time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC),
			want: DefaultBaseURL + "/EURUSD/2024/00/15/03h_ticks.bi5",
		},
		{
			name: "december is month eleven",
			base: DefaultBaseURL,
			pair: "USDJPY",
			time: time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC),
			want: DefaultBaseURL + "/USDJPY/2023/11/31/23h_ticks.bi5",
		},
		{
			name: "midnight is hour zero-padded",
			base: DefaultBaseURL,
			pair: "GBPUSD",
			time: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			want: DefaultBaseURL + "/GBPUSD/2024/05/03/00h_ticks.bi5",
		},
		{
			name: "trailing slash on base is trimmed",
			base: "http://localhost:8080/feed/",
			pair: "EURUSD",
			time: time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC),
			want: "http://localhost:8080/feed/EURUSD/2024/00/15/03h_ticks.bi5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TickURL(tt.base, tt.pair, tt.time))
		})
	}
}
