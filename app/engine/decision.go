package engine

import (
	"ProjectAdminAI/app/store"
)

type Kind string

const (
	KindReload     Kind = "RELOAD"
	KindSite       Kind = "SITE"
	KindTask       Kind = "TASK"
	KindOverall    Kind = "OVERALL"
	KindSearch     Kind = "SEARCH"
	KindSummary    Kind = "SUMMARY"
	KindAskForSite Kind = "ASK_FOR_SITE"
	KindDirectList Kind = "DIRECT_LIST"
)

// Decision is the classifier's single output for one request. Query carries
// the original request text untouched for the delegated consumer; Sites is
// only set for KindDirectList.
type Decision struct {
	Kind  Kind
	Query string
	Sites []store.Site
}

// Token renders the canonical wire form consumed by downstream handlers:
// bare RELOAD / SUMMARY, otherwise TAG:<original request text>.
func (d Decision) Token() string {
	switch d.Kind {
	case KindReload, KindSummary:
		return string(d.Kind)
	default:
		return string(d.Kind) + ":" + d.Query
	}
}
