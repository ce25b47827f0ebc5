package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type queryer interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type Queries struct {
	db queryer
}

func NewQueries(db queryer) *Queries {
	return &Queries{db: db}
}

func (q *Queries) UpsertSiteMetadata(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("site metadata key is required")
	}
	_, err := q.db.ExecContext(ctx, `
INSERT INTO site_metadata(key, value) VALUES(?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')`, key, value)
	if err != nil {
		return fmt.Errorf("upsert site metadata %q: %w", key, err)
	}
	return nil
}

func (q *Queries) GetSiteMetadata(ctx context.Context, key string) (SiteMetadataRow, error) {
	var out SiteMetadataRow
	err := q.db.QueryRowContext(ctx, `SELECT key, value, created_at, updated_at FROM site_metadata WHERE key = ?`, key).
		Scan(&out.Key, &out.Value, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return out, fmt.Errorf("get site metadata %q: %w", key, err)
	}
	return out, nil
}

func (q *Queries) ListSiteMetadata(ctx context.Context) ([]SiteMetadataRow, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT key, value, created_at, updated_at FROM site_metadata ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list site metadata: %w", err)
	}
	defer rows.Close()

	out := []SiteMetadataRow{}
	for rows.Next() {
		var row SiteMetadataRow
		if err := rows.Scan(&row.Key, &row.Value, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan site metadata row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate site metadata rows: %w", err)
	}
	return out, nil
}

func (q *Queries) DeleteSiteMetadata(ctx context.Context, key string) (bool, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM site_metadata WHERE key = ?`, key)
	if err != nil {
		return false, fmt.Errorf("delete site metadata %q: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete site metadata %q rows affected: %w", key, err)
	}
	return n > 0, nil
}
