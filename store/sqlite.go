package store

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/dukas/market"
	"github.com/rustyeddy/dukas/pkg/id"
	"github.com/sirupsen/logrus"
)

const Schema = `
CREATE TABLE IF NOT EXISTS ticks (
	run_id TEXT NOT NULL,
	timestamp DATETIME NOT NULL,
	ask REAL NOT NULL,
	bid REAL NOT NULL,
	ask_volume REAL NOT NULL,
	bid_volume REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ticks_timestamp ON ticks(timestamp);

CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	pair TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	tick_count INTEGER NOT NULL,
	created_at DATETIME NOT NULL
);
`

type SQLiteStore struct {
	Dir string
	Log *logrus.Logger
}

func (s *SQLiteStore) WriteDataset(ticks []market.Tick, pair, start, end string) (string, error) {
	path := filepath.Join(s.Dir, Filename(pair, start, end, "sqlite"))

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(Schema); err != nil {
		return "", fmt.Errorf("create schema: %w", err)
	}

	runID := id.New()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO ticks (run_id, timestamp, ask, bid, ask_volume, bid_volume)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("prepare insert: %w", err)
	}

	for _, tk := range ticks {
		_, err := stmt.Exec(
			runID,
			tk.Time.UTC().Format(timestampLayout),
			tk.AskFloat(),
			tk.BidFloat(),
			tk.AskVolume,
			tk.BidVolume,
		)
		if err != nil {
			stmt.Close()
			tx.Rollback()
			return "", fmt.Errorf("insert tick: %w", err)
		}
	}
	stmt.Close()

	_, err = tx.Exec(`
		INSERT INTO runs (run_id, pair, start_date, end_date, tick_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		runID, pair, start, end, len(ticks), time.Now().UTC(),
	)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("insert run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	s.Log.WithFields(logrus.Fields{
		"path":  path,
		"run":   runID,
		"ticks": len(ticks),
	}).Info("saved sqlite dataset")
	return path, nil
}
