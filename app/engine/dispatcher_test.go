package engine

import (
	"strings"
	"testing"

	"ProjectAdminAI/app/store"
)

func TestDispatcherDirectListing(t *testing.T) {
	d := NewDispatcher(populatedStore())
	out := d.Handle("Show me all my sites")
	if strings.Contains(out, ":") && strings.HasPrefix(out, "SITE") {
		t.Fatalf("direct listing must not be a routing token: %q", out)
	}
	if got := strings.Count(out, "- site_id:"); got != 3 {
		t.Fatalf("expected 3 listing entries, got %d:\n%s", got, out)
	}
}

func TestDispatcherClarifyingQuestion(t *testing.T) {
	d := NewDispatcher(populatedStore())
	if out := d.Handle("Show me tasks"); out != ClarifyingQuestion {
		t.Fatalf("expected the fixed clarifying question, got %q", out)
	}
}

func TestDispatcherBareTokens(t *testing.T) {
	empty := store.NewContextStore()
	if out := NewDispatcher(empty).Handle("Show me site 2"); out != "RELOAD" {
		t.Fatalf("expected bare RELOAD, got %q", out)
	}
	if out := NewDispatcher(populatedStore()).Handle("Give me an executive summary"); out != "SUMMARY" {
		t.Fatalf("expected bare SUMMARY, got %q", out)
	}
}

func TestDispatcherTokenRoundTrip(t *testing.T) {
	d := NewDispatcher(populatedStore())
	cases := []struct {
		query string
		tag   string
	}{
		{"Show me task 2", "TASK"},
		{"Show me site ATH2: the one in Maroussi", "SITE"},
		{"Maroussi", "SEARCH"},
		{"  Maroussi  ", "SEARCH"},
		{"\tShow me task 2\n", "TASK"},
		{"How many active sites do we have?", "OVERALL"},
	}
	for _, c := range cases {
		out := d.Handle(c.query)
		parts := strings.SplitN(out, ":", 2)
		if len(parts) != 2 {
			t.Fatalf("query %q: token %q has no payload", c.query, out)
		}
		if parts[0] != c.tag {
			t.Fatalf("query %q: expected tag %s, got %s", c.query, c.tag, parts[0])
		}
		if parts[1] != c.query {
			t.Fatalf("query %q: payload altered to %q", c.query, parts[1])
		}
	}
}
