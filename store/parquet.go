package store

import (
	"fmt"
	"path/filepath"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/rustyeddy/dukas/market"
	"github.com/sirupsen/logrus"
)

// tickRow is the parquet schema for one tick. Timestamps are unix
// milliseconds; prices are unscaled floats.
type tickRow struct {
	Timestamp int64   `parquet:"name=timestamp, type=INT64"`
	Ask       float64 `parquet:"name=ask, type=DOUBLE"`
	Bid       float64 `parquet:"name=bid, type=DOUBLE"`
	AskVolume float32 `parquet:"name=ask_volume, type=FLOAT"`
	BidVolume float32 `parquet:"name=bid_volume, type=FLOAT"`
}

type ParquetStore struct {
	Dir string
	Log *logrus.Logger
}

func (s *ParquetStore) WriteDataset(ticks []market.Tick, pair, start, end string) (string, error) {
	path := filepath.Join(s.Dir, Filename(pair, start, end, "parquet"))

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(tickRow), 4)
	if err != nil {
		return "", fmt.Errorf("parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_GZIP

	for _, tk := range ticks {
		row := tickRow{
			Timestamp: tk.Time.UTC().UnixMilli(),
			Ask:       tk.AskFloat(),
			Bid:       tk.BidFloat(),
			AskVolume: tk.AskVolume,
			BidVolume: tk.BidVolume,
		}
		if err := pw.Write(row); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return "", fmt.Errorf("finalize parquet: %w", err)
	}
	if err := fw.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	s.Log.WithFields(logrus.Fields{
		"path":  path,
		"ticks": len(ticks),
	}).Info("saved parquet dataset")
	return path, nil
}
