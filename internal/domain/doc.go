// Package domain contains the core business entities, value objects, and
// domain logic of QuickCache: flashcards and their fields, the duplicate-free
// QuickCache collection, user preferences, and list filters. It is
// independent of any storage or delivery mechanism.
package domain
