package preview

import (
	"net/url"
	"strconv"
)

// Params is the navigation state one pipeline run works from. It is
// rebuilt from the query string on every run and never persisted.
type Params struct {
	Series     string
	HasSeries  bool
	Chapter    int
	HasChapter bool
}

// ExtractParams reads the `seri` and `bolum` query keys of the current
// page URL. A missing or empty `seri` leaves Series absent. A missing,
// empty or non-numeric `bolum` leaves Chapter absent; malformed chapter
// values are treated the same as missing ones rather than leaking into
// the synthesized title.
func ExtractParams(pageURL *url.URL) Params {
	if pageURL == nil {
		return Params{}
	}

	q := pageURL.Query()

	var p Params
	if s := q.Get("seri"); s != "" {
		p.Series = s
		p.HasSeries = true
	}
	if raw := q.Get("bolum"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			p.Chapter = n
			p.HasChapter = true
		}
	}
	return p
}
