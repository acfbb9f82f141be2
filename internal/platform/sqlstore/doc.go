// Package sqlstore stores the QuickCache in a SQL database through sqlx.
// The same schema serves SQLite and PostgreSQL; it is created and upgraded
// by the embedded goose migrations (see Migrate).
package sqlstore
