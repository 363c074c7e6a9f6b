package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"seripreview/pkg/database"
)

func main() {
	var (
		seriesIn = flag.String("series", "data/series.csv", "input CSV path for series")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	n, err := importSeries(ctx, db, *seriesIn)
	if err != nil {
		log.Fatalf("import series failed: %v", err)
	}

	log.Printf("imported %d series from %s", n, *seriesIn)
}

func importSeries(ctx context.Context, db *sql.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return 0, err
	}

	stmt, err := db.PrepareContext(ctx, `
		INSERT INTO series (id, title, author, summary, cover_url, banner_url)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
		  author = excluded.author,
		  summary = excluded.summary,
		  cover_url = excluded.cover_url,
		  banner_url = excluded.banner_url
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("read row: %w", err)
		}

		get := func(col string) string {
			i, ok := header[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		title := get("title")
		if title == "" {
			continue
		}

		id := get("id")
		if id == "" {
			id = uuid.NewString()
		}

		if _, err := stmt.ExecContext(ctx,
			id, title, get("author"), get("summary"), get("cover_url"), get("banner_url"),
		); err != nil {
			return count, fmt.Errorf("insert %q: %w", title, err)
		}
		count++
	}

	return count, nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	header := make(map[string]int, len(row))
	for i, col := range row {
		header[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if _, ok := header["title"]; !ok {
		return nil, fmt.Errorf("header missing title column")
	}
	return header, nil
}
