package handlers

import (
	"context"

	"ProjectAdminAI/app/engine"
	"ProjectAdminAI/app/models"
	"ProjectAdminAI/app/search"
)

type SearchHelper struct {
	model    models.Interface
	searcher search.Interface
}

func (h *SearchHelper) Handle(ctx context.Context, query string) (string, error) {
	sites, err := h.searcher.Query(ctx, query, 5)
	if err != nil {
		return "", err
	}
	if len(sites) == 0 {
		return "No sites found matching the criteria: '" + query + "'.", nil
	}
	return ask(ctx, h.model, models.SearchHelperPrompt, query, engine.FormatSiteList(sites))
}
