package retrieval

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const portalHTML = `<html><body>
<h1>Sites</h1>
<table>
  <tr><th>Location</th><th>ID</th><th>State</th></tr>
  <tr><td>Maroussi</td><td>ATH2</td><td>active</td></tr>
  <tr><td> Bangalore Tech Park </td><td>BLR1</td><td>active</td></tr>
  <tr><td></td><td>MISSING</td><td>x</td></tr>
</table>
</body></html>`

func TestFetchPortalSites(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(portalHTML))
	}))
	defer ts.Close()

	sites, err := fetchPortalSites(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	if len(sites) != 2 {
		t.Fatalf("expected 2 valid rows, got %d", len(sites))
	}
	if sites[0].SiteID != "ATH2" || sites[0].LocationName != "Maroussi" || sites[0].State != "active" {
		t.Fatalf("unexpected first row: %+v", sites[0])
	}
	if sites[1].LocationName != "Bangalore Tech Park" {
		t.Fatalf("cell text must be trimmed: %q", sites[1].LocationName)
	}
}

func TestFetchPortalSitesNoRows(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body><p>maintenance</p></body></html>"))
	}))
	defer ts.Close()

	if _, err := fetchPortalSites(context.Background(), ts.URL); err == nil {
		t.Fatalf("expected error for page without site rows")
	}
}

func TestFetchPortalSitesBadURL(t *testing.T) {
	if _, err := fetchPortalSites(context.Background(), "ftp://nope"); err == nil {
		t.Fatalf("expected error for non-http url")
	}
}
