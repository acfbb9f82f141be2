// Package jsonfile stores the QuickCache and the user preferences as JSON
// files. The flashcard encoding is shared with the exchange package, which
// exports and imports files in the same format.
package jsonfile
