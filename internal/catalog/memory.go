package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"seripreview/pkg/models"
)

// Memory is an in-process Catalog backed by a plain map. It serves the
// one-shot renderer (catalog loaded from a JSON file) and doubles as the
// test substitute for the SQLite repo.
type Memory struct {
	records map[string]models.SeriesRecord
}

func NewMemory(records map[string]models.SeriesRecord) *Memory {
	return &Memory{records: records}
}

// LoadMemory reads a JSON object of title → record from path.
func LoadMemory(path string) (*Memory, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	records := make(map[string]models.SeriesRecord)
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return NewMemory(records), nil
}

func (m *Memory) Lookup(_ context.Context, title string) (*models.SeriesRecord, error) {
	if m == nil || len(m.records) == 0 {
		return nil, nil
	}
	rec, ok := m.records[title]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}
