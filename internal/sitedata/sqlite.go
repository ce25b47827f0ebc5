package sitedata

import (
	"context"
	"database/sql"

	dbpkg "github.com/benedict2310/robotsctl/internal/db"
)

// LoadSQLite reads every site_metadata row into siteMetadata. Empty values
// are reported as null.
func LoadSQLite(ctx context.Context, db *sql.DB) (*Document, error) {
	rows, err := dbpkg.NewQueries(db).ListSiteMetadata(ctx)
	if err != nil {
		return nil, err
	}
	meta := make(map[string]any, len(rows))
	for _, row := range rows {
		if row.Value == "" {
			meta[row.Key] = nil
			continue
		}
		meta[row.Key] = row.Value
	}
	return FromSiteMetadata(meta), nil
}

// SQLiteLoader opens the database read-only for the duration of the load.
func SQLiteLoader(path string) LoadFunc {
	return func(ctx context.Context) (*Document, error) {
		db, err := dbpkg.Open(dbpkg.ReadOnlyOptions(path))
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return LoadSQLite(ctx, db)
	}
}
