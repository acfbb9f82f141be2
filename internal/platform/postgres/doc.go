// Package postgres connects the SQL QuickCache store to PostgreSQL through
// the pgx stdlib driver and maps driver errors onto the store errors.
package postgres
