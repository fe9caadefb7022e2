package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"ProjectAdminAI/app/restclient"
	"ProjectAdminAI/app/store"
)

// Service is the data-retrieval collaborator: it owns every mutation of
// the context store. The engine itself never writes.
type Service struct {
	rest      restclient.Interface
	store     *store.ContextStore
	cache     store.SnapshotCache
	validate  *validator.Validate
	clientID  string
	portalURL string
}

func NewService(rest restclient.Interface, st *store.ContextStore, cache store.SnapshotCache, clientID, portalURL string) *Service {
	return &Service{
		rest:      rest,
		store:     st,
		cache:     cache,
		validate:  validator.New(),
		clientID:  clientID,
		portalURL: portalURL,
	}
}

type sitePayload struct {
	store.Site
	RequestTasks []store.Task `json:"request_tasks"`
}

type sitesResponse struct {
	Data []sitePayload `json:"data"`
}

// Refresh fetches the client's sites and tasks and swaps them into the
// store as one snapshot. When the JSON API is unreachable it falls back to
// scraping the admin portal's sites table, which carries no tasks.
func (s *Service) Refresh(ctx context.Context) error {
	sites, tasks, err := s.fetch(ctx)
	if err != nil {
		log.Printf("⚠️ Sites API fetch failed: %v", err)
		if s.portalURL == "" {
			return err
		}
		sites, err = fetchPortalSites(ctx, s.portalURL)
		if err != nil {
			return fmt.Errorf("portal fallback: %w", err)
		}
		tasks = nil
		log.Printf("📄 Loaded %d sites from portal fallback", len(sites))
	}

	s.store.Populate(sites, tasks)
	log.Printf("✅ Context populated: %d sites, %d tasks", len(sites), len(tasks))

	if s.cache != nil {
		snap := store.Snapshot{
			ID:        uuid.New().String(),
			ClientID:  s.clientID,
			Sites:     sites,
			Tasks:     tasks,
			FetchedAt: time.Now(),
		}
		if err := s.cache.SaveSnapshot(ctx, snap); err != nil {
			log.Printf("⚠️ Could not cache snapshot: %v", err)
		}
	}
	return nil
}

// Invalidate clears the store; the next in-domain request classifies as a
// reload.
func (s *Service) Invalidate() {
	s.store.Invalidate()
	log.Print("🗑️ Context invalidated")
}

// WarmFromCache populates the store from the last cached snapshot, if any.
func (s *Service) WarmFromCache(ctx context.Context) bool {
	if s.cache == nil {
		return false
	}
	snap, err := s.cache.LatestSnapshot(ctx, s.clientID)
	if err != nil {
		log.Printf("⚠️ Snapshot cache read failed: %v", err)
		return false
	}
	if snap == nil {
		return false
	}
	s.store.Populate(snap.Sites, snap.Tasks)
	log.Printf("♻️ Context warmed from snapshot of %s", snap.FetchedAt.Format(time.RFC3339))
	return true
}

func (s *Service) fetch(ctx context.Context) ([]store.Site, []store.Task, error) {
	endpoint := fmt.Sprintf("/api/clients/%s/sites", s.clientID)
	body, status, err := s.rest.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, nil, err
	}
	if status != http.StatusOK {
		return nil, nil, fmt.Errorf("sites API returned status %d", status)
	}

	var resp sitesResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, nil, fmt.Errorf("decode sites payload: %w", err)
	}

	sites := make([]store.Site, 0, len(resp.Data))
	var tasks []store.Task
	for _, payload := range resp.Data {
		if err := s.validate.Struct(payload.Site); err != nil {
			log.Printf("⚠️ Skipping malformed site record %q: %v", payload.SiteID, err)
			continue
		}
		sites = append(sites, payload.Site)
		for _, task := range payload.RequestTasks {
			task.SiteID = payload.SiteID
			if err := s.validate.Struct(task); err != nil {
				log.Printf("⚠️ Skipping malformed task record for site %q: %v", payload.SiteID, err)
				continue
			}
			tasks = append(tasks, task)
		}
	}
	return sites, tasks, nil
}
