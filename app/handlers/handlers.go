package handlers

import (
	"context"
	"fmt"

	"ProjectAdminAI/app/engine"
	"ProjectAdminAI/app/models"
	"ProjectAdminAI/app/search"
	"ProjectAdminAI/app/store"
)

// Consumer answers one delegated routing token. The query is always the
// original request text recovered from the token payload.
type Consumer interface {
	Handle(ctx context.Context, query string) (string, error)
}

// Registry maps routing kinds to their consumers.
type Registry struct {
	consumers map[engine.Kind]Consumer
}

func NewRegistry(model models.Interface, st *store.ContextStore, searcher search.Interface) *Registry {
	return &Registry{
		consumers: map[engine.Kind]Consumer{
			engine.KindSite:    &SiteHelper{model: model, store: st},
			engine.KindTask:    &TaskHelper{model: model, store: st},
			engine.KindOverall: &OverallHelper{model: model, store: st},
			engine.KindSummary: &SummaryHelper{model: model, store: st},
			engine.KindSearch:  &SearchHelper{model: model, searcher: searcher},
		},
	}
}

func (r *Registry) Consume(ctx context.Context, kind engine.Kind, query string) (string, error) {
	consumer, ok := r.consumers[kind]
	if !ok {
		return "", fmt.Errorf("no consumer registered for %s", kind)
	}
	return consumer.Handle(ctx, query)
}

func ask(ctx context.Context, model models.Interface, system, query, dataContext string) (string, error) {
	messages := []models.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: query + "\n\nContext:\n" + dataContext},
	}
	return model.Respond(ctx, messages)
}
