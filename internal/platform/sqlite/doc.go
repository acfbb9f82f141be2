// Package sqlite opens SQLite databases through go-sqlite3 and maps its
// constraint errors onto the store errors.
package sqlite
