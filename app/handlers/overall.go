package handlers

import (
	"context"
	"fmt"
	"strings"

	"ProjectAdminAI/app/engine"
	"ProjectAdminAI/app/models"
	"ProjectAdminAI/app/store"
)

type OverallHelper struct {
	model models.Interface
	store *store.ContextStore
}

func (h *OverallHelper) Handle(ctx context.Context, query string) (string, error) {
	return ask(ctx, h.model, models.OverallHelperPrompt, query, datasetContext(h.store))
}

func datasetContext(s *store.ContextStore) string {
	sites := s.AllSites()
	tasks := s.AllTasks()

	var b strings.Builder
	fmt.Fprintf(&b, "Total sites: %d\nTotal tasks: %d\n\nSites:\n", len(sites), len(tasks))
	b.WriteString(engine.FormatSiteList(sites))
	if len(tasks) > 0 {
		b.WriteString("\nTasks:\n")
		for _, task := range tasks {
			fmt.Fprintf(&b, "- task_id: %s | status: %s | site_id: %s\n", task.TaskID, task.Status, task.SiteID)
		}
	}
	return b.String()
}
