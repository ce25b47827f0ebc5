package migrations

// An empty siteUrl row keeps the default query answerable on a fresh
// database; the data source reports it as missing until it is set.
const seedSiteURLSQL = `
INSERT OR IGNORE INTO site_metadata(key, value) VALUES('siteUrl', '');
`
