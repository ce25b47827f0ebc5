package migrations

type Migration struct {
	Version int
	Name    string
	UpSQL   string
}

const siteMetadataSchemaSQL = `
CREATE TABLE IF NOT EXISTS site_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
    updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);
`

func All() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "site_metadata",
			UpSQL:   siteMetadataSchemaSQL,
		},
		{
			Version: 2,
			Name:    "site_metadata_seed_site_url",
			UpSQL:   seedSiteURLSQL,
		},
	}
}
