package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
)

func TestParquetStoreWriteDataset(t *testing.T) {
	t.Parallel()

	st := &ParquetStore{Dir: t.TempDir(), Log: quietLogger()}

	path, err := st.WriteDataset(sampleTicks(), "EURUSD", "2024-01-15", "2024-01-15")
	require.NoError(t, err)

	fr, err := local.NewLocalFileReader(path)
	require.NoError(t, err)
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(tickRow), 1)
	require.NoError(t, err)
	defer pr.ReadStop()

	require.Equal(t, int64(2), pr.GetNumRows())

	rows := make([]tickRow, 2)
	require.NoError(t, pr.Read(&rows))

	assert.InDelta(t, 1.0851, rows[0].Ask, 1e-9)
	assert.InDelta(t, 1.0850, rows[0].Bid, 1e-9)
	assert.Equal(t, float32(0.75), rows[0].AskVolume)
	assert.Less(t, rows[0].Timestamp, rows[1].Timestamp)
}
