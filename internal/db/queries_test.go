package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func openMigrated(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(DefaultOptions(filepath.Join(t.TempDir(), "site.sqlite")))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}
	return db
}

func TestSiteMetadataSeededEmpty(t *testing.T) {
	q := NewQueries(openMigrated(t))
	row, err := q.GetSiteMetadata(context.Background(), "siteUrl")
	if err != nil {
		t.Fatalf("GetSiteMetadata() error = %v", err)
	}
	if row.Value != "" {
		t.Fatalf("expected empty seeded siteUrl, got %q", row.Value)
	}
}

func TestUpsertAndListSiteMetadata(t *testing.T) {
	ctx := context.Background()
	q := NewQueries(openMigrated(t))

	if err := q.UpsertSiteMetadata(ctx, "siteUrl", "https://www.test.com"); err != nil {
		t.Fatalf("UpsertSiteMetadata() error = %v", err)
	}
	if err := q.UpsertSiteMetadata(ctx, "title", "Test"); err != nil {
		t.Fatalf("UpsertSiteMetadata() error = %v", err)
	}
	if err := q.UpsertSiteMetadata(ctx, "siteUrl", "https://www.example.com"); err != nil {
		t.Fatalf("UpsertSiteMetadata() update error = %v", err)
	}

	rows, err := q.ListSiteMetadata(ctx)
	if err != nil {
		t.Fatalf("ListSiteMetadata() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Key != "siteUrl" || rows[0].Value != "https://www.example.com" {
		t.Fatalf("unexpected first row: %#v", rows[0])
	}
	if rows[1].Key != "title" || rows[1].Value != "Test" {
		t.Fatalf("unexpected second row: %#v", rows[1])
	}
}

func TestUpsertSiteMetadataRequiresKey(t *testing.T) {
	q := NewQueries(openMigrated(t))
	if err := q.UpsertSiteMetadata(context.Background(), "  ", "x"); err == nil {
		t.Fatalf("expected missing key error")
	}
}

func TestDeleteSiteMetadata(t *testing.T) {
	ctx := context.Background()
	q := NewQueries(openMigrated(t))

	deleted, err := q.DeleteSiteMetadata(ctx, "siteUrl")
	if err != nil {
		t.Fatalf("DeleteSiteMetadata() error = %v", err)
	}
	if !deleted {
		t.Fatalf("expected seeded row to be deleted")
	}
	deleted, err = q.DeleteSiteMetadata(ctx, "siteUrl")
	if err != nil {
		t.Fatalf("DeleteSiteMetadata() second error = %v", err)
	}
	if deleted {
		t.Fatalf("expected second delete to report nothing deleted")
	}
	if _, err := q.GetSiteMetadata(ctx, "siteUrl"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}
