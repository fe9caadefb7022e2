package engine

import (
	"ProjectAdminAI/app/store"
)

// ClarifyingQuestion is the fixed reply for task queries that name no site.
const ClarifyingQuestion = "I need more information to help you. Could you please specify the site ID or name?"

// Dispatcher is the engine's entry point. It holds no state of its own
// beyond the externally owned context store and answers directly only for
// listings and clarification; every other decision is returned as its
// wire token for the caller to route.
type Dispatcher struct {
	store *store.ContextStore
}

func NewDispatcher(s *store.ContextStore) *Dispatcher {
	return &Dispatcher{store: s}
}

func (d *Dispatcher) Handle(text string) string {
	decision := Classify(text, d.store)
	switch decision.Kind {
	case KindDirectList:
		return FormatSiteList(decision.Sites)
	case KindAskForSite:
		return ClarifyingQuestion
	default:
		return decision.Token()
	}
}

// Decide exposes the raw decision for callers that need the variant
// itself, not the rendered output.
func (d *Dispatcher) Decide(text string) Decision {
	return Classify(text, d.store)
}
