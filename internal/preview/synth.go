package preview

import (
	"fmt"
	"net/url"

	"seripreview/pkg/models"
)

// TagDefinition is one social-preview meta element: an `og:`-namespaced
// or plain key plus its content value.
type TagDefinition struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Defaults is the immutable fallback configuration a pipeline is
// constructed with. Title, Description and Image must be non-empty so
// synthesis stays total.
type Defaults struct {
	Title           string
	Description     string
	Image           string
	SiteName        string
	Type            string
	TwitterCardKind string
}

// DefaultSite returns the site-wide fallback metadata.
func DefaultSite(baseOrigin string) Defaults {
	return Defaults{
		Title:           "SeriOku - Online Manga Oku",
		Description:     "Binlerce manga serisini ücretsiz, reklamsız ve hızlı oku.",
		Image:           baseOrigin + "/assets/og-cover.jpg",
		SiteName:        "SeriOku",
		Type:            "website",
		TwitterCardKind: "summary_large_image",
	}
}

// Synthesize combines the extracted params, the resolved series record
// (nil on a catalog miss) and the defaults into the fixed ordered tag
// list. The result always has exactly ten entries; the Twitter values
// are copied verbatim from the Open Graph ones so every platform
// unfurls the same preview.
func Synthesize(p Params, rec *models.SeriesRecord, d Defaults, baseOrigin string, pageURL *url.URL) []TagDefinition {
	title := d.Title
	switch {
	case p.HasSeries && p.HasChapter:
		title = fmt.Sprintf("%s - Bölüm %d", p.Series, p.Chapter)
	case p.HasSeries:
		title = p.Series
	}

	description := d.Description
	if rec != nil && rec.Summary != "" {
		description = rec.Summary
	}

	image := d.Image
	if rec != nil && rec.Cover != "" {
		image = NormalizeAssetURL(rec.Cover, baseOrigin, d.Image)
	}

	pageRef := ""
	if pageURL != nil {
		pageRef = pageURL.String()
	}

	return []TagDefinition{
		{Key: "og:title", Value: title},
		{Key: "og:description", Value: description},
		{Key: "og:image", Value: image},
		{Key: "og:url", Value: pageRef},
		{Key: "og:type", Value: d.Type},
		{Key: "og:site_name", Value: d.SiteName},
		{Key: "twitter:card", Value: d.TwitterCardKind},
		{Key: "twitter:title", Value: title},
		{Key: "twitter:description", Value: description},
		{Key: "twitter:image", Value: image},
	}
}
