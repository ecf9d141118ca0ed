// ════════════════════════════════════════════════════════════════════════════════════════════════
// Trial Results Store
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Cache Prefetch Micro-Benchmark
// Component: Optional Measurement Persistence & Export
//
// Description:
//   Opt-in persistence for benchmark passes. Repeated trials across reboots, kernels and
//   machines accumulate in a single sqlite file, which is what turns "looked faster today"
//   into a comparable series. JSON export serves the same rows to external tooling.
//
// Notes:
//   - Strictly off the measurement path: the store is touched only after both passes end.
//   - The default invocation never creates files; both surfaces are behind flags.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package results

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sugawarayuuta/sonnet"

	"main/bench"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SCHEMA
// ═══════════════════════════════════════════════════════════════════════════════════════════════

const createTrialsTable = `
CREATE TABLE IF NOT EXISTS trials (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	ts         TEXT    NOT NULL,
	label      TEXT    NOT NULL,
	buffer_len INTEGER NOT NULL,
	iters      INTEGER NOT NULL,
	lookahead  INTEGER NOT NULL,
	seconds    REAL    NOT NULL,
	digest     TEXT    NOT NULL DEFAULT ''
)`

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// STORE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Store appends benchmark results to a sqlite trial log.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the trial database at path and ensures
// the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createTrialsTable); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Record appends one measured pass, stamped with the current UTC time.
func (s *Store) Record(r bench.Result) error {
	_, err := s.db.Exec(
		`INSERT INTO trials (ts, label, buffer_len, iters, lookahead, seconds, digest)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		r.Label, r.BufferLen, r.Iters, r.Lookahead, r.Seconds, r.Digest,
	)
	return err
}

// TrialCount reports how many passes the log holds.
func (s *Store) TrialCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM trials`).Scan(&n)
	return n, err
}

// MeanSeconds returns the average measured seconds for one label, for quick
// cross-trial comparison without leaving sqlite.
func (s *Store) MeanSeconds(label string) (float64, error) {
	var mean sql.NullFloat64
	err := s.db.QueryRow(`SELECT AVG(seconds) FROM trials WHERE label = ?`, label).Scan(&mean)
	if err != nil {
		return 0, err
	}
	return mean.Float64, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// EXPORT
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// ExportJSON renders a result set as a JSON array.
func ExportJSON(rs []bench.Result) ([]byte, error) {
	return sonnet.Marshal(rs)
}
