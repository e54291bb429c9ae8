package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRange(t *testing.T) {
	t.Parallel()

	dates, err := DateRange("2024-01-30", "2024-02-02")
	require.NoError(t, err)
	require.Len(t, dates, 4)

	assert.Equal(t, time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), dates[3])
}

func TestDateRangeSingleDay(t *testing.T) {
	t.Parallel()

	dates, err := DateRange("2024-01-15", "2024-01-15")
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), dates[0])
}

func TestDateRangeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "inverted", start: "2024-02-01", end: "2024-01-01"},
		{name: "bad start", start: "01/15/2024", end: "2024-01-16"},
		{name: "bad end", start: "2024-01-15", end: "tomorrow"},
		{name: "empty", start: "", end: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DateRange(tt.start, tt.end)
			assert.Error(t, err)
		})
	}
}
