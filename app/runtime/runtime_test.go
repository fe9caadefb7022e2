package runtime

import (
	"context"
	"strings"
	"testing"

	"ProjectAdminAI/app/handlers"
	"ProjectAdminAI/app/models"
	"ProjectAdminAI/app/search"
	"ProjectAdminAI/app/store"
)

type stubRetriever struct {
	store     *store.ContextStore
	sites     []store.Site
	tasks     []store.Task
	fail      bool
	refreshes int
}

func (r *stubRetriever) Refresh(context.Context) error {
	r.refreshes++
	if r.fail {
		return context.DeadlineExceeded
	}
	r.store.Populate(r.sites, r.tasks)
	return nil
}

func (r *stubRetriever) Invalidate() {
	r.store.Invalidate()
}

type echoModel struct{}

func (echoModel) Respond(_ context.Context, messages []models.Message) (string, error) {
	return messages[0].Content[:4], nil
}

func (echoModel) EmbedText(context.Context, string) ([]float32, error) {
	return nil, context.Canceled
}

func newTestRuntime(fail bool) (*Runtime, *stubRetriever) {
	st := store.NewContextStore()
	retriever := &stubRetriever{
		store: st,
		sites: []store.Site{
			{SiteID: "ATH2", LocationName: "Maroussi", State: "active"},
			{SiteID: "BLR1", LocationName: "Bangalore Tech Park", State: "active"},
		},
		tasks: []store.Task{{TaskID: "2", SiteID: "ATH2", Name: "Fiber rollout", Status: "open"}},
		fail:  fail,
	}
	searcher := search.NewClientWithVectors(nil, nil, st)
	consumers := handlers.NewRegistry(echoModel{}, st, searcher)
	return NewRuntime(st, retriever, consumers, nil), retriever
}

func TestAnswerEmptyInput(t *testing.T) {
	rt, _ := newTestRuntime(false)
	if out := rt.Answer(context.Background(), "   "); out != "" {
		t.Fatalf("empty input must produce no reply, got %q", out)
	}
}

func TestAnswerGreeting(t *testing.T) {
	rt, retriever := newTestRuntime(false)
	out := rt.Answer(context.Background(), "Hi there")
	if out != greetingReply {
		t.Fatalf("expected greeting reply, got %q", out)
	}
	if retriever.refreshes != 0 {
		t.Fatalf("greeting must not trigger a refresh")
	}
}

func TestAnswerRefreshesThenLists(t *testing.T) {
	rt, retriever := newTestRuntime(false)
	out := rt.Answer(context.Background(), "Show me all my sites")
	if retriever.refreshes != 1 {
		t.Fatalf("expected exactly one refresh, got %d", retriever.refreshes)
	}
	if got := strings.Count(out, "- site_id:"); got != 2 {
		t.Fatalf("expected a 2-entry listing after refresh:\n%s", out)
	}
}

func TestAnswerRefreshFailure(t *testing.T) {
	rt, _ := newTestRuntime(true)
	out := rt.Answer(context.Background(), "Show me all my sites")
	if !strings.Contains(out, "could not load") {
		t.Fatalf("expected the reload failure message, got %q", out)
	}
}

func TestAnswerClarifiesTasksWithoutSite(t *testing.T) {
	rt, _ := newTestRuntime(false)
	rt.Answer(context.Background(), "Show me all my sites") // populate
	out := rt.Answer(context.Background(), "Show me tasks")
	if !strings.Contains(out, "I need more information") {
		t.Fatalf("expected the clarifying question, got %q", out)
	}
}

func TestInvalidateEvent(t *testing.T) {
	rt, retriever := newTestRuntime(false)
	rt.Answer(context.Background(), "Show me all my sites")
	if !retriever.store.IsPopulated() {
		t.Fatalf("expected populated store")
	}
	rt.handleEvent(context.Background(), Event{Type: InvalidateContext})
	if retriever.store.IsPopulated() {
		t.Fatalf("invalidate event must clear the store")
	}
}
