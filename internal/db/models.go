package db

type SiteMetadataRow struct {
	Key       string
	Value     string
	CreatedAt string
	UpdatedAt string
}
