// Package store defines interfaces for QuickCache persistence.
// These interfaces keep the logic layer independent of whether flashcards
// live in a JSON file or in a SQL database.
package store
