package engine

import (
	"regexp"
	"strings"

	"ProjectAdminAI/app/store"
	"ProjectAdminAI/app/utils"
)

// The classifier is an ordered rule table: the first matching rule wins.
// Rules go from most specific (single task, single site) to coarsest
// (aggregate fallback), and nothing proceeds without data in the store.

var (
	explicitTaskRe = regexp.MustCompile(`(?i)\btask\s+(?:id\s+)?([\w-]+)`)
	explicitSiteRe = regexp.MustCompile(`(?i)\bsite\s+(?:id\s+)?([\w-]+)`)
	siteCodeRe     = regexp.MustCompile(`(?i)^[a-z]+\d[\w-]*$`)
)

// Prepositions that the explicit "task X" / "site X" patterns must not
// swallow as an identifier ("task for site ATH2" names no task).
var refExclusions = map[string]struct{}{
	"for": {}, "at": {}, "on": {}, "in": {}, "of": {}, "with": {}, "from": {},
}

// Filter vocabulary: tokens that turn a listing into a cross-cutting query.
var filterWords = []string{
	"status", "state", "active", "inactive", "offline", "online", "open",
	"closed", "pending", "completed", "count", "many", "total", "number",
	"risk", "risks",
}

// Verbs and question words that frame a concrete command around a name.
var commandWords = []string{
	"show", "give", "get", "list", "display", "tell", "find", "fetch",
	"details", "what", "who", "how", "where", "when", "can", "could",
	"need", "want", "see", "retrieve",
}

// Classify inspects one request against the context store and produces
// exactly one routing decision. It never errors and never panics; inputs
// the rules cannot place end up as aggregate queries (populated store) or
// a reload (empty store). The returned Query is always text untouched so
// token payloads round-trip byte for byte; only the rule predicates see
// the trimmed form.
func Classify(text string, s *store.ContextStore) Decision {
	query := text
	trimmed := strings.TrimSpace(text)

	summary := utils.ContainsAnyWord(trimmed, "summary", "summarize", "summarise", "overview")
	siteTopic := utils.ContainsAnyWord(trimmed, "site", "sites")
	taskTopic := utils.ContainsAnyWord(trimmed, "task", "tasks", "project", "projects")
	inDomain := siteTopic || taskTopic || summary

	// Rule 1: no data, no classification.
	if inDomain && !s.IsPopulated() {
		return Decision{Kind: KindReload, Query: query}
	}

	// Rule 2: executive summary intent.
	if summary {
		return Decision{Kind: KindSummary, Query: query}
	}

	taskRef := matchRef(explicitTaskRe, trimmed)
	siteRef := matchRef(explicitSiteRe, trimmed) != "" || siteNameRef(trimmed, s) != ""

	// Rule 3: task request with no site to scope it.
	if taskTopic && taskRef == "" && !siteRef {
		return Decision{Kind: KindAskForSite, Query: query}
	}

	// Rule 4: exactly one task named.
	if taskRef != "" {
		return Decision{Kind: KindTask, Query: query}
	}

	// Rule 5: one site named, with command framing. A site that is missing
	// from the store still routes to SITE; the downstream handler owns the
	// authoritative lookup.
	framed := utils.ContainsAnyWord(trimmed, commandWords...)
	if matchRef(explicitSiteRe, trimmed) != "" || (siteNameRef(trimmed, s) != "" && framed) {
		return Decision{Kind: KindSite, Query: query}
	}

	// Rule 6: bare name or site-code mention, no verb framing.
	if !framed && bareSiteMention(trimmed, s) {
		return Decision{Kind: KindSearch, Query: query}
	}

	// Rule 7: cross-cutting filter over the whole dataset.
	if inDomain && utils.ContainsAnyWord(trimmed, filterWords...) {
		return Decision{Kind: KindOverall, Query: query}
	}

	// Rule 8: plain unfiltered listing.
	if siteTopic && utils.ContainsAnyWord(trimmed, "all", "list", "every", "everything") {
		return Decision{Kind: KindDirectList, Query: query, Sites: s.AllSites()}
	}

	// Rule 9: ambiguous but in domain; treat as aggregate rather than drop.
	if s.IsPopulated() {
		return Decision{Kind: KindOverall, Query: query}
	}
	return Decision{Kind: KindReload, Query: query}
}

func matchRef(re *regexp.Regexp, query string) string {
	m := re.FindStringSubmatch(query)
	if len(m) < 2 {
		return ""
	}
	ref := strings.ToLower(m[1])
	if _, excluded := refExclusions[ref]; excluded {
		return ""
	}
	return ref
}

// siteNameRef returns the first keyword of the query that resolves against
// the store by id or name. Filter vocabulary never counts as a name.
func siteNameRef(query string, s *store.ContextStore) string {
	skip := make(map[string]struct{}, len(filterWords))
	for _, w := range filterWords {
		skip[w] = struct{}{}
	}
	for _, kw := range utils.Keywords(query) {
		if _, excluded := skip[kw]; excluded {
			continue
		}
		if _, excluded := refExclusions[kw]; excluded {
			continue
		}
		if _, found := s.FindSite(kw); found {
			return kw
		}
	}
	return ""
}

func bareSiteMention(query string, s *store.ContextStore) bool {
	if siteNameRef(query, s) != "" {
		return true
	}
	for _, kw := range utils.Keywords(query) {
		if siteCodeRe.MatchString(kw) {
			return true
		}
	}
	return false
}
