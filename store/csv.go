package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rustyeddy/dukas/market"
	"github.com/sirupsen/logrus"
)

// timestampLayout keeps millisecond resolution, matching the feed.
const timestampLayout = "2006-01-02 15:04:05.000"

type CSVStore struct {
	Dir string
	Log *logrus.Logger
}

func (s *CSVStore) WriteDataset(ticks []market.Tick, pair, start, end string) (string, error) {
	path := filepath.Join(s.Dir, Filename(pair, start, end, "csv"))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"timestamp", "ask", "bid", "ask_volume", "bid_volume"}); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for _, tk := range ticks {
		err := w.Write([]string{
			tk.Time.UTC().Format(timestampLayout),
			fprice(tk.AskFloat()),
			fprice(tk.BidFloat()),
			fvol(tk.AskVolume),
			fvol(tk.BidVolume),
		})
		if err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	s.Log.WithFields(logrus.Fields{
		"path":  path,
		"ticks": len(ticks),
	}).Info("saved csv dataset")
	return path, nil
}

// fprice prints the five decimals the pipette scale carries exactly.
func fprice(x float64) string {
	return strconv.FormatFloat(x, 'f', 5, 64)
}

func fvol(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
