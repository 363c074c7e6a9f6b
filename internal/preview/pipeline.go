package preview

import (
	"context"
	"log"
	"net/url"

	"seripreview/internal/catalog"
	"seripreview/pkg/models"
)

// Upserter is the document-head surface the pipeline writes through.
// *headdoc.Document satisfies it; tests substitute a recorder.
type Upserter interface {
	Upsert(key, value string)
}

// Pipeline resolves one page URL into the ten social-preview tags and
// applies them. It keeps no state between runs: every invocation
// re-extracts, re-resolves and re-synthesizes from scratch, so runs are
// re-entrant and a later run fully supersedes an earlier one.
type Pipeline struct {
	Catalog    catalog.Catalog
	Defaults   Defaults
	BaseOrigin string
}

func NewPipeline(cat catalog.Catalog, d Defaults, baseOrigin string) *Pipeline {
	return &Pipeline{Catalog: cat, Defaults: d, BaseOrigin: baseOrigin}
}

// Tags runs extraction, catalog resolution and synthesis for pageURL.
// The catalog is only consulted when a series parameter is present, and
// a lookup failure is treated as a miss: the tags fall back to defaults
// rather than erroring, since a generic preview is always preferable to
// none.
func (p *Pipeline) Tags(ctx context.Context, pageURL *url.URL) []TagDefinition {
	params := ExtractParams(pageURL)

	var rec *models.SeriesRecord
	if params.HasSeries && p.Catalog != nil {
		r, err := p.Catalog.Lookup(ctx, params.Series)
		if err != nil {
			log.Printf("[preview] catalog lookup %q: %v", params.Series, err)
		} else {
			rec = r
		}
	}

	return Synthesize(params, rec, p.Defaults, p.BaseOrigin, pageURL)
}

// Refresh computes the tag list for pageURL and upserts every tag into
// head, in order. This is the single entry point lifecycle adapters,
// CLIs and tests all call.
func (p *Pipeline) Refresh(ctx context.Context, pageURL *url.URL, head Upserter) {
	for _, t := range p.Tags(ctx, pageURL) {
		head.Upsert(t.Key, t.Value)
	}
}
