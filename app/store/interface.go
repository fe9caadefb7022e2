package store

import (
	"context"
	"time"
)

// SnapshotCache persists the last good fetch so a new session can warm the
// context store before the sites API has been reached.
type SnapshotCache interface {
	SaveSnapshot(ctx context.Context, snap Snapshot) error
	LatestSnapshot(ctx context.Context, clientID string) (*Snapshot, error)
}

type Snapshot struct {
	ID        string    `json:"id" db:"id"`
	ClientID  string    `json:"client_id" db:"client_id"`
	Sites     []Site    `json:"sites"`
	Tasks     []Task    `json:"tasks"`
	FetchedAt time.Time `json:"fetched_at" db:"fetched_at"`
}
