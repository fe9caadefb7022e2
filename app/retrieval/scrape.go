package retrieval

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"ProjectAdminAI/app/store"
)

const maxFetchSize = 5 << 20

var httpClient = &http.Client{Timeout: 20 * time.Second}

// fetchPortalSites scrapes the admin portal's sites table as a degraded
// feed when the JSON API is down. Expected columns: location name,
// site id, state.
func fetchPortalSites(ctx context.Context, pageURL string) ([]store.Site, error) {
	u, err := url.Parse(pageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("invalid url: %s", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch portal page: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	limited := io.LimitReader(resp.Body, maxFetchSize)
	doc, err := html.Parse(limited)
	if err != nil {
		return nil, err
	}

	sites := parseSitesTable(doc)
	if len(sites) == 0 {
		return nil, errors.New("portal page contained no site rows")
	}
	return sites, nil
}

func parseSitesTable(doc *html.Node) []store.Site {
	var sites []store.Site
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			if site, ok := parseSiteRow(n); ok {
				sites = append(sites, site)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sites
}

func parseSiteRow(tr *html.Node) (store.Site, bool) {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "td" {
			cells = append(cells, strings.TrimSpace(textContent(c)))
		}
	}
	if len(cells) < 3 || cells[0] == "" || cells[1] == "" {
		return store.Site{}, false
	}
	return store.Site{
		LocationName: cells[0],
		SiteID:       cells[1],
		State:        cells[2],
	}, true
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
