package handlers

import (
	"context"
	"fmt"
	"strings"

	"ProjectAdminAI/app/models"
	"ProjectAdminAI/app/store"
	"ProjectAdminAI/app/utils"
)

type TaskHelper struct {
	model models.Interface
	store *store.ContextStore
}

func (h *TaskHelper) Handle(ctx context.Context, query string) (string, error) {
	matches := matchTasks(h.store, query)
	if len(matches) == 0 {
		return "No task found matching '" + query + "'. Please clarify the task ID or description.", nil
	}
	return ask(ctx, h.model, models.TaskHelperPrompt, query, formatTasks(h.store, matches))
}

func matchTasks(s *store.ContextStore, query string) []store.Task {
	keywords := utils.Keywords(query)
	var out []store.Task
	for _, task := range s.AllTasks() {
		haystack := strings.ToLower(task.TaskID + " " + task.Name + " " + task.Status)
		for _, kw := range keywords {
			if strings.Contains(haystack, kw) {
				out = append(out, task)
				break
			}
		}
	}
	return out
}

func formatTasks(s *store.ContextStore, tasks []store.Task) string {
	var b strings.Builder
	for _, task := range tasks {
		siteName := task.SiteID
		if site, ok := s.FindSite(task.SiteID); ok {
			siteName = site.LocationName
		}
		fmt.Fprintf(&b, "- task_id: %s | name: %s | status: %s | site: %s (%s)\n",
			task.TaskID, task.Name, task.Status, siteName, task.SiteID)
	}
	return b.String()
}
