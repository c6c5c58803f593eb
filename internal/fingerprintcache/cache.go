package fingerprintcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"finddup/internal/imagehash"
	"finddup/internal/logging"
)

// Store persists fingerprints between runs, keyed by path plus file size and
// modification time, so unchanged files skip decoding and hashing. A store
// opened with an empty path is a no-op: every lookup misses and writes are
// discarded.
type Store struct {
	db     *sql.DB
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// Open initializes or connects to the cache database. The database file is
// guarded by a sibling lock file; when another run holds the lock the cache
// degrades to a no-op rather than failing the scan.
func Open(path string, logger *slog.Logger) (*Store, error) {
	logger = logging.NewComponentLogger(logger, "fingerprintcache")
	store := &Store{path: path, logger: logger}
	if path == "" {
		return store, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !locked {
		logger.Warn("fingerprint cache is held by another run, continuing without cache",
			logging.String("path", path))
		store.path = ""
		return store, nil
	}
	store.lock = lock

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store.db = db
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close releases the database connection and the cache lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var firstErr error
	if s.db != nil {
		firstErr = s.db.Close()
		s.db = nil
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.lock = nil
	}
	return firstErr
}

func (s *Store) applyMigrations(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS fingerprints (
			path         TEXT    NOT NULL,
			size_bytes   INTEGER NOT NULL,
			mtime_unix   INTEGER NOT NULL,
			algorithm    TEXT    NOT NULL,
			bits         INTEGER NOT NULL,
			offsets_json TEXT    NOT NULL,
			frames_json  TEXT    NOT NULL,
			cached_at    TEXT    NOT NULL,
			PRIMARY KEY (path, algorithm, bits)
		)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply cache schema: %w", err)
	}
	return nil
}

// Lookup returns the cached fingerprints for path if the stored size, mtime,
// and sample offsets still match. A stale or missing entry is a miss. Pass
// nil offsets for single-fingerprint sources.
func (s *Store) Lookup(ctx context.Context, path string, sizeBytes, mtimeUnix int64, algorithm imagehash.Algorithm, bits int, offsets []int) ([]imagehash.Fingerprint, bool) {
	if s == nil || s.db == nil {
		return nil, false
	}

	var (
		storedSize    int64
		storedMtime   int64
		storedOffsets string
		framesJSON    string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT size_bytes, mtime_unix, offsets_json, frames_json FROM fingerprints
		 WHERE path = ? AND algorithm = ? AND bits = ?`,
		path, string(algorithm), bits,
	).Scan(&storedSize, &storedMtime, &storedOffsets, &framesJSON)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("cache lookup failed", logging.String("path", path), logging.Error(err))
		}
		return nil, false
	}
	if storedSize != sizeBytes || storedMtime != mtimeUnix || storedOffsets != encodeOffsets(offsets) {
		return nil, false
	}

	var frames [][]uint64
	if err := json.Unmarshal([]byte(framesJSON), &frames); err != nil {
		s.logger.Warn("cache entry corrupt, ignoring", logging.String("path", path), logging.Error(err))
		return nil, false
	}

	fps := make([]imagehash.Fingerprint, 0, len(frames))
	for _, words := range frames {
		fp, err := imagehash.FromWords(algorithm, bits, words)
		if err != nil {
			s.logger.Warn("cache entry corrupt, ignoring", logging.String("path", path), logging.Error(err))
			return nil, false
		}
		fps = append(fps, fp)
	}
	return fps, true
}

// encodeOffsets renders a sample offset list in canonical form so two runs
// with the same configuration compare equal. nil and empty are the same.
func encodeOffsets(offsets []int) string {
	if len(offsets) == 0 {
		return "[]"
	}
	encoded, err := json.Marshal(offsets)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// Store upserts the fingerprints for path together with the sample offsets
// that produced them. Empty fingerprint sets are not cached: they mark
// extraction failures, which deserve a retry next run.
func (s *Store) Store(ctx context.Context, path string, sizeBytes, mtimeUnix int64, offsets []int, fps []imagehash.Fingerprint) error {
	if s == nil || s.db == nil || len(fps) == 0 {
		return nil
	}

	algorithm := fps[0].Algorithm()
	bits := fps[0].Bits()
	frames := make([][]uint64, 0, len(fps))
	for _, fp := range fps {
		if fp.Algorithm() != algorithm || fp.Bits() != bits {
			return fmt.Errorf("cache store %s: mixed fingerprint shapes", path)
		}
		frames = append(frames, fp.Words())
	}
	framesJSON, err := json.Marshal(frames)
	if err != nil {
		return fmt.Errorf("encode frames: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO fingerprints (path, size_bytes, mtime_unix, algorithm, bits, offsets_json, frames_json, cached_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (path, algorithm, bits) DO UPDATE SET
			size_bytes = excluded.size_bytes,
			mtime_unix = excluded.mtime_unix,
			offsets_json = excluded.offsets_json,
			frames_json = excluded.frames_json,
			cached_at = excluded.cached_at`,
		path, sizeBytes, mtimeUnix, string(algorithm), bits, encodeOffsets(offsets), string(framesJSON),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("cache store %s: %w", path, err)
	}
	return nil
}

// Prune removes entries for every cached path that keep rejects and returns
// the number of paths removed.
func (s *Store) Prune(ctx context.Context, keep func(path string) bool) (int, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT path FROM fingerprints`)
	if err != nil {
		return 0, fmt.Errorf("cache prune: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return 0, fmt.Errorf("cache prune scan: %w", err)
		}
		if !keep(path) {
			stale = append(stale, path)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("cache prune rows: %w", err)
	}

	for _, path := range stale {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM fingerprints WHERE path = ?`, path); err != nil {
			return 0, fmt.Errorf("cache prune delete: %w", err)
		}
	}
	if len(stale) > 0 {
		s.logger.Debug("pruned stale cache entries", logging.Int("count", len(stale)))
	}
	return len(stale), nil
}
