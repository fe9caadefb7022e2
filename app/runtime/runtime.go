package runtime

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"ProjectAdminAI/app/engine"
	"ProjectAdminAI/app/handlers"
	"ProjectAdminAI/app/search"
	"ProjectAdminAI/app/store"
	"ProjectAdminAI/app/utils"
)

const greetingReply = "Hello! How can I assist you with your project administration needs today?"

// Retriever is the data-retrieval collaborator as the runtime sees it.
type Retriever interface {
	Refresh(ctx context.Context) error
	Invalidate()
}

// Runtime owns the session loop: it gates out-of-domain input, lets the
// engine classify everything else, resolves RELOAD through the retriever
// and hands delegation tokens to their consumers.
type Runtime struct {
	dispatcher *engine.Dispatcher
	retriever  Retriever
	consumers  *handlers.Registry
	searcher   search.Interface
	store      *store.ContextStore
	transcript *utils.TranscriptLogger
	events     chan Event
}

func NewRuntime(st *store.ContextStore, retriever Retriever, consumers *handlers.Registry, searcher search.Interface) *Runtime {
	return &Runtime{
		dispatcher: engine.NewDispatcher(st),
		retriever:  retriever,
		consumers:  consumers,
		searcher:   searcher,
		store:      st,
		events:     make(chan Event, 100),
	}
}

// WithTranscript attaches a session transcript; every answered exchange is
// recorded.
func (r *Runtime) WithTranscript(t *utils.TranscriptLogger) *Runtime {
	r.transcript = t
	return r
}

func (r *Runtime) QueueEvent(event Event) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	select {
	case r.events <- event:
	default:
		log.Print("⚠️ Event queue is full, dropping event")
	}
}

func (r *Runtime) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-r.events:
			r.handleEvent(ctx, ev)
		}
	}
}

func (r *Runtime) handleEvent(ctx context.Context, ev Event) {
	switch ev.Type {
	case InvalidateContext:
		r.retriever.Invalidate()
	case UserMessage:
		answer := r.Answer(ctx, ev.Text)
		if ev.Reply != nil && answer != "" {
			ev.Reply(answer)
		}
	default:
		log.Printf("⚠️ Unknown event type: %s", ev.Type)
	}
}

// Answer runs one request through the engine and resolves the decision to
// final text. Empty input yields an empty reply; greetings never reach the
// classifier.
func (r *Runtime) Answer(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if isGreeting(text) {
		return greetingReply
	}

	decision := r.dispatcher.Decide(text)
	if decision.Kind == engine.KindReload {
		decision = r.reload(ctx, text)
	}
	answer := r.resolve(ctx, decision)
	if r.transcript != nil {
		r.transcript.Record(text, answer)
	}
	return answer
}

func (r *Runtime) reload(ctx context.Context, text string) engine.Decision {
	log.Printf("🔄 Context missing, refreshing for request %q", text)
	if err := r.retriever.Refresh(ctx); err != nil {
		log.Printf("❌ Refresh failed: %v", err)
		return engine.Decision{Kind: engine.KindReload, Query: text}
	}
	if r.searcher != nil {
		if err := r.searcher.IndexSites(ctx, r.store.AllSites()); err != nil {
			log.Printf("⚠️ Could not index sites for search: %v", err)
		}
	}
	return r.dispatcher.Decide(text)
}

func (r *Runtime) resolve(ctx context.Context, decision engine.Decision) string {
	switch decision.Kind {
	case engine.KindDirectList:
		return engine.FormatSiteList(decision.Sites)
	case engine.KindAskForSite:
		return engine.ClarifyingQuestion
	case engine.KindReload:
		return "I could not load your site data right now. Please try again shortly."
	default:
		answer, err := r.consumers.Consume(ctx, decision.Kind, decision.Query)
		if err != nil {
			log.Printf("❌ Consumer %s failed: %v", decision.Kind, err)
			return "Something went wrong while answering that. Please try again."
		}
		return answer
	}
}

func isGreeting(text string) bool {
	if len(utils.Tokenize(text)) > 4 {
		return false
	}
	return utils.ContainsAnyWord(text, "hi", "hello", "hey", "greetings")
}
