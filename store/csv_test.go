package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVStoreWriteDataset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st := &CSVStore{Dir: dir, Log: quietLogger()}

	path, err := st.WriteDataset(sampleTicks(), "EURUSD", "2024-01-15", "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "EURUSD_2024-01-15_2024-01-15.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(data)))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"timestamp", "ask", "bid", "ask_volume", "bid_volume"}, rows[0])
	assert.Equal(t, []string{"2024-01-15 03:00:00.100", "1.08510", "1.08500", "0.75", "1.25"}, rows[1])
	assert.Equal(t, []string{"2024-01-15 03:00:00.250", "1.08512", "1.08501", "0.5", "2"}, rows[2])
}

func TestCSVStoreEmptyDataset(t *testing.T) {
	t.Parallel()

	st := &CSVStore{Dir: t.TempDir(), Log: quietLogger()}

	path, err := st.WriteDataset(nil, "EURUSD", "2024-01-15", "2024-01-16")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Header only.
	assert.Equal(t, "timestamp,ask,bid,ask_volume,bid_volume\n", string(data))
}
