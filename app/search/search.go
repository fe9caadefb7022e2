package search

import (
	"context"

	"ProjectAdminAI/app/store"
)

// SiteDoc is one indexed site record with its embedding payload.
type SiteDoc struct {
	ID     string
	Site   store.Site
	Vector []float32
}

type Interface interface {
	IndexSites(ctx context.Context, sites []store.Site) error
	Query(ctx context.Context, text string, k int) ([]store.Site, error)
}

type vectorStore interface {
	UpsertBatch(ctx context.Context, docs []SiteDoc) error
	Query(ctx context.Context, vector []float32, k int) ([]SiteDoc, error)
	InitCollection(ctx context.Context, vectorSize int) (bool, error)
	Close() error
}
