package store

import (
	"io"
	"testing"
	"time"

	"github.com/rustyeddy/dukas/market"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sampleTicks() []market.Tick {
	base := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	return []market.Tick{
		{Time: base.Add(100 * time.Millisecond), Ask: 108510, Bid: 108500, AskVolume: 0.75, BidVolume: 1.25},
		{Time: base.Add(250 * time.Millisecond), Ask: 108512, Bid: 108501, AskVolume: 0.5, BidVolume: 2},
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()

	got := Filename("EURUSD", "2024-01-01", "2024-01-31", "csv")
	assert.Equal(t, "EURUSD_2024-01-01_2024-01-31.csv", got)
}

func TestNewUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := New("xml", t.TempDir(), quietLogger())
	assert.Error(t, err)
}

func TestNewCreatesDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir() + "/nested/out"
	st, err := New("csv", dir, quietLogger())
	require.NoError(t, err)
	assert.NotNil(t, st)
}
