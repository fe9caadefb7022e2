package store

import (
	"testing"
)

func testStore() *ContextStore {
	s := NewContextStore()
	s.Populate(
		[]Site{
			{SiteID: "ATH2", LocationName: "Maroussi", State: "active"},
			{SiteID: "BLR1", LocationName: "Bangalore Tech Park", State: "active"},
		},
		[]Task{
			{TaskID: "2", SiteID: "ATH2"},
			{TaskID: "9", SiteID: "GONE1"},
		},
	)
	return s
}

func TestIsPopulated(t *testing.T) {
	s := NewContextStore()
	if s.IsPopulated() {
		t.Fatalf("fresh store must not report populated")
	}
	s = testStore()
	if !s.IsPopulated() {
		t.Fatalf("store with sites must report populated")
	}
	s.Invalidate()
	if s.IsPopulated() {
		t.Fatalf("invalidated store must not report populated")
	}
}

func TestFindSite(t *testing.T) {
	s := testStore()
	cases := []struct {
		query string
		want  string
		found bool
	}{
		{"ATH2", "ATH2", true},
		{"ath2", "ATH2", true},
		{"maroussi", "ATH2", true},
		{"Bangalore", "BLR1", true},
		{"tech park", "BLR1", true},
		{"nowhere", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		site, ok := s.FindSite(c.query)
		if ok != c.found {
			t.Fatalf("FindSite(%q): found=%v, want %v", c.query, ok, c.found)
		}
		if ok && site.SiteID != c.want {
			t.Fatalf("FindSite(%q): got %s, want %s", c.query, site.SiteID, c.want)
		}
	}
}

func TestFindSitePrefersExactMatch(t *testing.T) {
	s := NewContextStore()
	s.Populate([]Site{
		{SiteID: "A1", LocationName: "Atlanta North"},
		{SiteID: "A2", LocationName: "Atlanta"},
	}, nil)
	site, ok := s.FindSite("atlanta")
	if !ok || site.SiteID != "A2" {
		t.Fatalf("exact name match must win over substring, got %+v", site)
	}
}

func TestAllSitesPreservesInsertionOrder(t *testing.T) {
	s := testStore()
	sites := s.AllSites()
	if len(sites) != 2 || sites[0].SiteID != "ATH2" || sites[1].SiteID != "BLR1" {
		t.Fatalf("unexpected ordering: %+v", sites)
	}
}

func TestPopulateDropsOrphanTasks(t *testing.T) {
	s := testStore()
	if got := len(s.TasksForSite("ATH2")); got != 1 {
		t.Fatalf("expected 1 task for ATH2, got %d", got)
	}
	if got := len(s.AllTasks()); got != 1 {
		t.Fatalf("orphan task must be dropped, got %d tasks", got)
	}
}

func TestPopulateReplacesWholeSnapshot(t *testing.T) {
	s := testStore()
	s.Populate([]Site{{SiteID: "ZRH1", LocationName: "Zurich", State: "offline"}}, nil)
	if _, ok := s.FindSite("ATH2"); ok {
		t.Fatalf("old snapshot must be gone after repopulate")
	}
	if _, ok := s.FindSite("zurich"); !ok {
		t.Fatalf("new snapshot must be visible")
	}
}
