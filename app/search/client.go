package search

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ProjectAdminAI/app/models"
	"ProjectAdminAI/app/store"
	"ProjectAdminAI/app/utils"
)

const (
	vectorSize     = 2560
	collectionName = "sites"
)

// Client resolves fuzzy site mentions. It prefers the qdrant vector index
// and degrades to keyword matching against the live store when the index
// is unavailable.
type Client struct {
	vectors vectorStore
	model   models.Interface
	store   *store.ContextStore
}

var _ Interface = &Client{}

func NewClient(model models.Interface, st *store.ContextStore) *Client {
	vectors, err := NewQdrantStore(collectionName)
	if err != nil {
		log.Printf("⚠️ Qdrant unavailable, search falls back to keywords: %v", err)
		vectors = nil
	}
	return &Client{
		vectors: vectors,
		model:   model,
		store:   st,
	}
}

func NewClientWithVectors(vectors vectorStore, model models.Interface, st *store.ContextStore) *Client {
	return &Client{vectors: vectors, model: model, store: st}
}

// IndexSites embeds and upserts the given site records. Call after every
// successful context refresh so the index tracks the latest snapshot.
func (c *Client) IndexSites(ctx context.Context, sites []store.Site) error {
	if c.vectors == nil {
		return nil
	}
	if _, err := c.vectors.InitCollection(ctx, vectorSize); err != nil {
		return err
	}

	batch := make([]SiteDoc, 0, len(sites))
	for _, site := range sites {
		text := fmt.Sprintf("%s %s %s", site.LocationName, site.SiteID, site.State)
		vec, err := c.model.EmbedText(ctx, text)
		if err != nil {
			return err
		}
		batch = append(batch, SiteDoc{Site: site, Vector: vec})
	}
	return c.vectors.UpsertBatch(ctx, batch)
}

func (c *Client) Query(ctx context.Context, text string, k int) ([]store.Site, error) {
	if c.vectors != nil {
		vec, err := c.model.EmbedText(ctx, text)
		if err == nil {
			docs, qerr := c.vectors.Query(ctx, vec, k)
			if qerr == nil {
				sites := make([]store.Site, 0, len(docs))
				for _, doc := range docs {
					sites = append(sites, doc.Site)
				}
				return sites, nil
			}
			log.Printf("⚠️ Vector query failed, using keyword fallback: %v", qerr)
		} else {
			log.Printf("⚠️ Embedding failed, using keyword fallback: %v", err)
		}
	}
	return KeywordSearch(c.store, text, k), nil
}

// KeywordSearch substring-matches the query's keywords against every site
// in the store. Presence only, no scoring.
func KeywordSearch(s *store.ContextStore, text string, k int) []store.Site {
	keywords := utils.Keywords(text)
	if len(keywords) == 0 {
		return nil
	}

	var out []store.Site
	for _, site := range s.AllSites() {
		haystack := strings.ToLower(site.SiteID + " " + site.LocationName + " " + site.State)
		for _, kw := range keywords {
			if strings.Contains(haystack, kw) {
				out = append(out, site)
				break
			}
		}
		if k > 0 && len(out) >= k {
			break
		}
	}
	return out
}
