package handlers

import (
	"context"
	"fmt"

	"ProjectAdminAI/app/models"
	"ProjectAdminAI/app/store"
	"ProjectAdminAI/app/utils"
)

type SummaryHelper struct {
	model models.Interface
	store *store.ContextStore
}

func (h *SummaryHelper) Handle(ctx context.Context, query string) (string, error) {
	return ask(ctx, h.model, models.SummaryHelperPrompt, query, siteTaskTree(h.store))
}

// siteTaskTree renders the whole dataset as a site -> task tree so the
// summary model sees the hierarchy at a glance.
func siteTaskTree(s *store.ContextStore) string {
	entries := make([]utils.TreeEntry, 0, len(s.AllSites()))
	for _, site := range s.AllSites() {
		entry := utils.TreeEntry{
			Label: fmt.Sprintf("%s (%s) [%s]", site.LocationName, site.SiteID, site.State),
		}
		for _, task := range s.TasksForSite(site.SiteID) {
			entry.Children = append(entry.Children,
				fmt.Sprintf("task %s: %s [%s]", task.TaskID, task.Name, task.Status))
		}
		entries = append(entries, entry)
	}
	return utils.BuildSiteTree("sites", entries)
}
