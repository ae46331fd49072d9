package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/common"
	_ "github.com/mattn/go-sqlite3"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("history")

const inMemoryDB = ":memory:"

// sqliteHistory keeps a ledger of every snapshot file written
type sqliteHistory struct {
	db *sql.DB
}

// NewSQLiteHistory opens (or creates) the database and its schema
func NewSQLiteHistory(dbPath string) (*sqliteHistory, error) {
	err := prepareDirectories(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dbPath == inMemoryDB {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	err = createSchema(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Debug("history database opened", "path", dbPath)

	return &sqliteHistory{
		db: db,
	}, nil
}

func prepareDirectories(dbPath string) error {
	if dbPath == inMemoryDB {
		return nil
	}

	return os.MkdirAll(filepath.Dir(dbPath), os.ModePerm)
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		filename    TEXT    NOT NULL PRIMARY KEY,
		repository  TEXT    NOT NULL,
		version     TEXT    NOT NULL,
		fetched_at  INTEGER NOT NULL,
		path        TEXT    NOT NULL,
		size_bytes  INTEGER NOT NULL DEFAULT 0,
		components  INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_repository ON snapshots(repository);
	CREATE INDEX IF NOT EXISTS idx_snapshots_fetched_at ON snapshots(fetched_at);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// RecordSnapshot stores the snapshot, replacing a previous entry written under the same filename
func (h *sqliteHistory) RecordSnapshot(ctx context.Context, snapshot common.Snapshot) error {
	_, err := h.db.ExecContext(ctx, `
		INSERT INTO snapshots (filename, repository, version, fetched_at, path, size_bytes, components)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(filename) DO UPDATE SET
			repository=excluded.repository,
			version=excluded.version,
			fetched_at=excluded.fetched_at,
			path=excluded.path,
			size_bytes=excluded.size_bytes,
			components=excluded.components
	`, snapshot.Filename, snapshot.Repository, snapshot.Version, snapshot.FetchedAt, snapshot.Path,
		snapshot.SizeBytes, snapshot.Components)
	if err != nil {
		return fmt.Errorf("failed to record snapshot: %w", err)
	}

	return nil
}

// ListSnapshots returns the recorded snapshots, newest first. An empty repository lists everything.
func (h *sqliteHistory) ListSnapshots(ctx context.Context, repository string) ([]common.Snapshot, error) {
	query := `
		SELECT filename, repository, version, fetched_at, path, size_bytes, components
		FROM snapshots`
	args := make([]interface{}, 0, 1)
	if len(repository) > 0 {
		query += " WHERE repository = ?"
		args = append(args, repository)
	}
	query += " ORDER BY fetched_at DESC, filename DESC"

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	results := make([]common.Snapshot, 0)
	for rows.Next() {
		var s common.Snapshot
		err = rows.Scan(&s.Filename, &s.Repository, &s.Version, &s.FetchedAt, &s.Path, &s.SizeBytes, &s.Components)
		if err != nil {
			return nil, err
		}

		results = append(results, s)
	}

	return results, rows.Err()
}

// GetSnapshot returns the snapshot recorded under the filename
func (h *sqliteHistory) GetSnapshot(ctx context.Context, filename string) (*common.Snapshot, error) {
	var s common.Snapshot
	err := h.db.QueryRowContext(ctx, `
		SELECT filename, repository, version, fetched_at, path, size_bytes, components
		FROM snapshots
		WHERE filename = ?
	`, filename).Scan(&s.Filename, &s.Repository, &s.Version, &s.FetchedAt, &s.Path, &s.SizeBytes, &s.Components)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Close closes the database
func (h *sqliteHistory) Close() error {
	return h.db.Close()
}

// IsInterfaceNil returns true if the value under the interface is nil
func (h *sqliteHistory) IsInterfaceNil() bool {
	return h == nil
}
