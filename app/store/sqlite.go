package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteSnapshotCache struct {
	db *sql.DB
}

var _ SnapshotCache = &SQLiteSnapshotCache{}

func getDBPath() string {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		projectDir, err := os.Getwd()
		if err != nil {
			log.Fatalf("❌ Error getting project directory: %v", err)
		}
		defaultPath := filepath.Join(projectDir, "data", "context.db")
		if err := os.MkdirAll(filepath.Dir(defaultPath), os.ModePerm); err != nil {
			log.Fatalf("❌ Error creating data directory: %v", err)
		}
		log.Printf("📂 DB_PATH not set, using default: %s", defaultPath)
		return defaultPath
	}
	return dbPath
}

func NewSQLiteSnapshotCache() *SQLiteSnapshotCache {
	dbPath := getDBPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("❌ Error opening SQLite DB at %s: %v", dbPath, err)
	}

	_, err = db.Exec(`
        CREATE TABLE IF NOT EXISTS snapshots (
            id TEXT NOT NULL,
            client_id TEXT NOT NULL,
            sites TEXT NOT NULL,
            tasks TEXT NOT NULL,
            fetched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (client_id, id)
        );
        CREATE INDEX IF NOT EXISTS idx_client_id ON snapshots (client_id);
    `)
	if err != nil {
		log.Fatalf("❌ Error creating table: %v", err)
	}

	return &SQLiteSnapshotCache{db: db}
}

func (s *SQLiteSnapshotCache) SaveSnapshot(ctx context.Context, snap Snapshot) error {
	sites, err := json.Marshal(snap.Sites)
	if err != nil {
		return err
	}
	tasks, err := json.Marshal(snap.Tasks)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, client_id, sites, tasks, fetched_at)
		 VALUES (?, ?, ?, ?, datetime(?))`,
		snap.ID, snap.ClientID, string(sites), string(tasks), snap.FetchedAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		log.Printf("⚠️ Error saving snapshot for client %s: %v", snap.ClientID, err)
		return err
	}
	log.Printf("✅ Snapshot saved: client=%s sites=%d tasks=%d", snap.ClientID, len(snap.Sites), len(snap.Tasks))
	return nil
}

func (s *SQLiteSnapshotCache) LatestSnapshot(ctx context.Context, clientID string) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, client_id, sites, tasks, fetched_at
		 FROM snapshots
		 WHERE client_id = ?
		 ORDER BY fetched_at DESC
		 LIMIT 1`,
		clientID,
	)

	var snap Snapshot
	var sites, tasks, fetchedAt string
	if err := row.Scan(&snap.ID, &snap.ClientID, &sites, &tasks, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(sites), &snap.Sites); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tasks), &snap.Tasks); err != nil {
		return nil, err
	}
	snap.FetchedAt, _ = time.Parse("2006-01-02 15:04:05", fetchedAt)
	return &snap, nil
}

func (s *SQLiteSnapshotCache) Close() error {
	return s.db.Close()
}
