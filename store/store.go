// Package store persists downloaded tick datasets. One Store writes at
// most one dataset per invocation; the backend (CSV, SQLite, Parquet) is
// picked by configuration.
package store

import (
	"fmt"
	"os"

	"github.com/rustyeddy/dukas/market"
	"github.com/sirupsen/logrus"
)

type Store interface {
	// WriteDataset writes the ordered dataset and returns the path of the
	// file it created.
	WriteDataset(ticks []market.Tick, pair, start, end string) (string, error)
}

// Filename encodes the instrument and requested range:
// <PAIR>_<start>_<end>.<ext>.
func Filename(pair, start, end, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", pair, start, end, ext)
}

// New builds the Store for an output format. dir is created if missing.
func New(format, dir string, log *logrus.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	switch format {
	case "csv":
		return &CSVStore{Dir: dir, Log: log}, nil
	case "sqlite":
		return &SQLiteStore{Dir: dir, Log: log}, nil
	case "parquet":
		return &ParquetStore{Dir: dir, Log: log}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use csv, sqlite, or parquet)", format)
	}
}
