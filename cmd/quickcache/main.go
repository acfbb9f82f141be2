// Package main is the QuickCache command line: an interactive shell for
// managing and quizzing flashcards, a one-shot command runner and the
// database migration tool.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
