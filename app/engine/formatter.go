package engine

import (
	"fmt"
	"strings"

	"ProjectAdminAI/app/store"
)

const noSitesMessage = "No sites found matching the criteria."

// FormatSiteList renders sites in the fixed listing layout, one entry per
// site in the order given, one line per attribute. Status always comes
// from the record's state field. Pure and total: the empty sequence yields
// the fixed no-results message, never an empty string.
func FormatSiteList(sites []store.Site) string {
	if len(sites) == 0 {
		return noSitesMessage
	}

	var b strings.Builder
	for i, site := range sites {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- location_name: %s\n", site.LocationName)
		fmt.Fprintf(&b, "- site_id: %s\n", site.SiteID)
		fmt.Fprintf(&b, "- status: %s\n", site.State)
	}
	return b.String()
}
