package render

import "strings"

// CursorMarker is the element emitted at the cursor position.
const CursorMarker = `<span class="cursor"></span>`

// Default routes for generated wiki-link anchors.
const (
	DefaultEntryRoute = "/entries"
	DefaultWikiRoute  = "/wiki"
)

// Options controls rendering.
type Options struct {
	// Titles maps entry ids to display titles. A nil map disables
	// resolution: every wiki-link renders as an anchor labelled with its
	// display text. In a non-nil map a missing id marks the link invalid.
	Titles map[string]string

	// WikiSlug switches wiki-link hrefs from the entry route to the public
	// wiki route of the named site.
	WikiSlug string

	// EntryRoute is the href prefix for wiki-links. Defaults to DefaultEntryRoute.
	EntryRoute string

	// WikiRoute is the href prefix used with WikiSlug. Defaults to DefaultWikiRoute.
	WikiRoute string

	// DisableLanguageDetection leaves untagged code blocks without a
	// language class.
	DisableLanguageDetection bool
}

// WikiHref returns the anchor href for an entry id.
func (o Options) WikiHref(entryID string) string {
	id := escapeURL(entryID)
	if o.WikiSlug != "" {
		route := o.WikiRoute
		if route == "" {
			route = DefaultWikiRoute
		}
		return strings.TrimRight(route, "/") + "/" + escapeURL(o.WikiSlug) + "/" + id
	}

	route := o.EntryRoute
	if route == "" {
		route = DefaultEntryRoute
	}
	return strings.TrimRight(route, "/") + "/" + id
}

// resolveTitle returns the label of a wiki-link and whether the link is
// valid. An explicit display text takes precedence over the title map.
func (o Options) resolveTitle(entryID, display string) (string, bool) {
	if o.Titles == nil {
		return display, true
	}

	title, ok := o.Titles[entryID]
	if !ok {
		return display, false
	}
	if display != "" && display != entryID {
		return display, true
	}
	return title, true
}
