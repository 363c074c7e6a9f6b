package catalog

import (
	"context"

	"seripreview/pkg/models"
)

// Catalog is the read-only series lookup the preview pipeline resolves
// against. Lookup returns (nil, nil) when no record exists under the
// exact, case-sensitive title; an empty catalog behaves the same as a
// miss and is never an error.
type Catalog interface {
	Lookup(ctx context.Context, title string) (*models.SeriesRecord, error)
}
