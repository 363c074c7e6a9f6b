package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"seripreview/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

type ListQuery struct {
	Q      string // keyword search in title/author
	Limit  int
	Offset int
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Lookup implements Catalog with an exact, case-sensitive title match.
func (r *Repo) Lookup(ctx context.Context, title string) (*models.SeriesRecord, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT author, summary, cover_url, banner_url
		FROM series
		WHERE title = ?
	`, title)

	var author, summary, cover, banner sql.NullString
	if err := row.Scan(&author, &summary, &cover, &banner); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan lookup: %w", err)
	}

	return &models.SeriesRecord{
		Cover:   cover.String,
		Summary: summary.String,
		Author:  author.String,
		Banner:  banner.String,
	}, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.SeriesDB, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, title, author, summary, cover_url, banner_url
		FROM series
		WHERE id = ?
	`, id)

	s, err := scanSeries(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan getByID: %w", err)
	}
	return s, nil
}

func (r *Repo) Count(ctx context.Context, q ListQuery) (int, error) {
	sqlStr, args := buildListSQL(q, true)
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	var total int
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("count scan: %w", err)
	}
	return total, nil
}

func (r *Repo) List(ctx context.Context, q ListQuery) ([]models.SeriesDB, error) {
	sqlStr, args := buildListSQL(q, false)

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list query: %w", err)
	}
	defer rows.Close()

	out := make([]models.SeriesDB, 0, q.Limit)
	for rows.Next() {
		s, err := scanSeries(rows)
		if err != nil {
			return nil, fmt.Errorf("list scan: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// Upsert inserts a series row or overwrites the row already holding the
// same title. Used by the CSV importer and the admin endpoint.
func (r *Repo) Upsert(ctx context.Context, s models.SeriesDB) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO series (id, title, author, summary, cover_url, banner_url)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
		  author = excluded.author,
		  summary = excluded.summary,
		  cover_url = excluded.cover_url,
		  banner_url = excluded.banner_url
	`, s.ID, s.Title, s.Author, s.Summary, s.Cover, s.Banner)
	if err != nil {
		return fmt.Errorf("upsert series: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeries(row rowScanner) (*models.SeriesDB, error) {
	var (
		s       models.SeriesDB
		author  sql.NullString
		summary sql.NullString
		cover   sql.NullString
		banner  sql.NullString
	)

	if err := row.Scan(&s.ID, &s.Title, &author, &summary, &cover, &banner); err != nil {
		return nil, err
	}

	s.Author = author.String
	s.Summary = summary.String
	s.Cover = cover.String
	s.Banner = banner.String
	return &s, nil
}

func buildListSQL(q ListQuery, countOnly bool) (string, []any) {
	baseSelect := `
		SELECT id, title, author, summary, cover_url, banner_url
		FROM series
	`
	if countOnly {
		baseSelect = `SELECT COUNT(*) FROM series`
	}

	var where []string
	var args []any

	if strings.TrimSpace(q.Q) != "" {
		where = append(where, "(LOWER(title) LIKE ? OR LOWER(author) LIKE ?)")
		kw := "%" + strings.ToLower(strings.TrimSpace(q.Q)) + "%"
		args = append(args, kw, kw)
	}

	sqlStr := baseSelect
	if len(where) > 0 {
		sqlStr += " WHERE " + strings.Join(where, " AND ")
	}

	if !countOnly {
		sqlStr += " ORDER BY title ASC"
		sqlStr += " LIMIT ? OFFSET ?"
		limit := q.Limit
		if limit <= 0 || limit > 100 {
			limit = 20
		}
		offset := q.Offset
		if offset < 0 {
			offset = 0
		}
		args = append(args, limit, offset)
	}

	return sqlStr, args
}
