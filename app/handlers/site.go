package handlers

import (
	"context"

	"ProjectAdminAI/app/engine"
	"ProjectAdminAI/app/models"
	"ProjectAdminAI/app/search"
	"ProjectAdminAI/app/store"
	"ProjectAdminAI/app/utils"
)

// SiteHelper owns the authoritative lookup for single-site queries,
// including the "site truly does not exist" outcome the engine defers.
type SiteHelper struct {
	model models.Interface
	store *store.ContextStore
}

func (h *SiteHelper) Handle(ctx context.Context, query string) (string, error) {
	matches := matchSites(h.store, query)
	if len(matches) == 0 {
		return "No site found matching '" + query + "'. Please clarify the site ID or name.", nil
	}
	return ask(ctx, h.model, models.SiteHelperPrompt, query, engine.FormatSiteList(matches))
}

func matchSites(s *store.ContextStore, query string) []store.Site {
	var out []store.Site
	seen := map[string]struct{}{}
	for _, kw := range utils.Keywords(query) {
		site, found := s.FindSite(kw)
		if !found {
			continue
		}
		if _, dup := seen[site.SiteID]; dup {
			continue
		}
		seen[site.SiteID] = struct{}{}
		out = append(out, site)
	}
	if len(out) == 0 {
		out = search.KeywordSearch(s, query, 5)
	}
	return out
}
