package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *SQLiteSnapshotCache {
	t.Helper()
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "context.db"))
	cache := NewSQLiteSnapshotCache()
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestSnapshotRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	saved := Snapshot{
		ID:       "snap-1",
		ClientID: "client01",
		Sites: []Site{
			{SiteID: "ATH2", LocationName: "Maroussi", State: "active"},
			{SiteID: "BLR1", LocationName: "Bangalore Tech Park", State: "active"},
		},
		Tasks:     []Task{{TaskID: "2", SiteID: "ATH2", Name: "Fiber rollout", Status: "open"}},
		FetchedAt: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
	}
	if err := cache.SaveSnapshot(ctx, saved); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, err := cache.LatestSnapshot(ctx, "client01")
	if err != nil {
		t.Fatalf("LatestSnapshot: %v", err)
	}
	if got == nil {
		t.Fatal("expected a snapshot, got nil")
	}
	if got.ID != saved.ID || got.ClientID != saved.ClientID {
		t.Fatalf("snapshot identity altered: %+v", got)
	}
	if len(got.Sites) != 2 || got.Sites[0].SiteID != "ATH2" || got.Sites[1].LocationName != "Bangalore Tech Park" {
		t.Fatalf("sites did not survive the round trip: %+v", got.Sites)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].SiteID != "ATH2" || got.Tasks[0].Status != "open" {
		t.Fatalf("tasks did not survive the round trip: %+v", got.Tasks)
	}
	if !got.FetchedAt.Equal(saved.FetchedAt) {
		t.Fatalf("fetched_at altered: got %v, want %v", got.FetchedAt, saved.FetchedAt)
	}
}

func TestLatestSnapshotPicksNewest(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"snap-old", "snap-new"} {
		snap := Snapshot{
			ID:        id,
			ClientID:  "client01",
			Sites:     []Site{{SiteID: "ATH2", LocationName: "Maroussi", State: "active"}},
			FetchedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := cache.SaveSnapshot(ctx, snap); err != nil {
			t.Fatalf("SaveSnapshot %s: %v", id, err)
		}
	}

	got, err := cache.LatestSnapshot(ctx, "client01")
	if err != nil {
		t.Fatalf("LatestSnapshot: %v", err)
	}
	if got == nil || got.ID != "snap-new" {
		t.Fatalf("expected the newest snapshot, got %+v", got)
	}
}

func TestLatestSnapshotUnknownClient(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.LatestSnapshot(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("LatestSnapshot: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown client, got %+v", got)
	}
}
