package models

// SeriesRecord is the metadata block the preview pipeline reads for one
// series. It is owned by the catalog; the pipeline holds a read-only
// reference for the duration of a single run.
type SeriesRecord struct {
	Cover   string `json:"cover,omitempty"`
	Summary string `json:"summary,omitempty"`
	Author  string `json:"author,omitempty"`
	Banner  string `json:"banner,omitempty"`
}

// SeriesDB is one row of the series table as served by the public API.
type SeriesDB struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author,omitempty"`
	Summary string `json:"summary,omitempty"`
	Cover   string `json:"cover,omitempty"`
	Banner  string `json:"banner,omitempty"`
}

// Record extracts the metadata block the pipeline consumes.
func (s SeriesDB) Record() SeriesRecord {
	return SeriesRecord{
		Cover:   s.Cover,
		Summary: s.Summary,
		Author:  s.Author,
		Banner:  s.Banner,
	}
}
