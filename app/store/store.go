package store

import (
	"strings"
	"sync"
)

// Site is one managed location record as delivered by the sites API.
// Status questions always resolve against State, never any other field.
type Site struct {
	SiteID       string `json:"site_id" validate:"required"`
	LocationName string `json:"location_name" validate:"required"`
	State        string `json:"state"`
}

// Task is a unit of work scoped to exactly one site. Beyond the parent
// reference the schema is opaque to the engine.
type Task struct {
	TaskID   string `json:"task_sys_id" validate:"required"`
	SiteID   string `json:"site_id"`
	Name     string `json:"name,omitempty"`
	Status   string `json:"status,omitempty"`
	Metadata string `json:"metadata,omitempty"`
}

type snapshot struct {
	sites map[string]Site
	tasks map[string][]Task
	order []string
}

// ContextStore holds the current client's sites and tasks. It is replaced
// wholesale by the retrieval collaborator; the engine only reads it.
type ContextStore struct {
	mu   sync.RWMutex
	snap *snapshot
}

func NewContextStore() *ContextStore {
	return &ContextStore{}
}

// Populate swaps in a full snapshot. Tasks whose parent site is missing
// from sites are dropped so readers never see an orphaned task.
func (s *ContextStore) Populate(sites []Site, tasks []Task) {
	snap := &snapshot{
		sites: make(map[string]Site, len(sites)),
		tasks: make(map[string][]Task),
		order: make([]string, 0, len(sites)),
	}
	for _, site := range sites {
		if _, exists := snap.sites[site.SiteID]; exists {
			continue
		}
		snap.sites[site.SiteID] = site
		snap.order = append(snap.order, site.SiteID)
	}
	for _, task := range tasks {
		if _, ok := snap.sites[task.SiteID]; !ok {
			continue
		}
		snap.tasks[task.SiteID] = append(snap.tasks[task.SiteID], task)
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Invalidate clears the store back to the never-populated state.
func (s *ContextStore) Invalidate() {
	s.mu.Lock()
	s.snap = nil
	s.mu.Unlock()
}

func (s *ContextStore) IsPopulated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap != nil && len(s.snap.order) > 0
}

// FindSite matches identifier against site_id or location_name,
// case-insensitive, exact first and then substring.
func (s *ContextStore) FindSite(identifier string) (Site, bool) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(identifier))
	if snap == nil || needle == "" {
		return Site{}, false
	}
	for _, id := range snap.order {
		site := snap.sites[id]
		if strings.ToLower(site.SiteID) == needle || strings.ToLower(site.LocationName) == needle {
			return site, true
		}
	}
	for _, id := range snap.order {
		site := snap.sites[id]
		if strings.Contains(strings.ToLower(site.SiteID), needle) ||
			strings.Contains(strings.ToLower(site.LocationName), needle) {
			return site, true
		}
	}
	return Site{}, false
}

// AllSites returns every site in insertion order.
func (s *ContextStore) AllSites() []Site {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	if snap == nil {
		return nil
	}
	sites := make([]Site, 0, len(snap.order))
	for _, id := range snap.order {
		sites = append(sites, snap.sites[id])
	}
	return sites
}

// TasksForSite returns the tasks loaded for one site, in fetch order.
func (s *ContextStore) TasksForSite(siteID string) []Task {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	if snap == nil {
		return nil
	}
	tasks := snap.tasks[siteID]
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// AllTasks returns every task grouped by site insertion order.
func (s *ContextStore) AllTasks() []Task {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	if snap == nil {
		return nil
	}
	var out []Task
	for _, id := range snap.order {
		out = append(out, snap.tasks[id]...)
	}
	return out
}
