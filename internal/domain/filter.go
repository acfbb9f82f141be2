package domain

import (
	"slices"
	"strings"
)

// Predicate selects flashcards for the displayed list.
type Predicate func(*Flashcard) bool

// ShowAll is the predicate of an unfiltered list.
func ShowAll(*Flashcard) bool { return true }

// FlashcardFilter matches cards on question keywords, tags and difficulty.
// Every non-empty criterion must match. Any one keyword suffices; a keyword
// matches a whole word of the question text, ignoring case.
type FlashcardFilter struct {
	Keywords   []string
	Tags       []Tag
	Difficulty Difficulty
}

// IsEmpty reports whether the filter has no criteria at all.
func (ff FlashcardFilter) IsEmpty() bool {
	return len(ff.Keywords) == 0 && len(ff.Tags) == 0 && ff.Difficulty == ""
}

// Test applies the filter to f.
func (ff FlashcardFilter) Test(f *Flashcard) bool {
	if len(ff.Keywords) > 0 && !containsAnyWord(f.Question.Text, ff.Keywords) {
		return false
	}
	if !f.HasTags(ff.Tags...) {
		return false
	}
	if ff.Difficulty != "" && f.Difficulty != ff.Difficulty {
		return false
	}
	return true
}

// containsAnyWord splits sentence on whitespace and trims surrounding
// punctuation, so "Go?" matches the keyword "go".
func containsAnyWord(sentence string, keywords []string) bool {
	words := strings.Fields(sentence)
	for i, w := range words {
		words[i] = strings.TrimFunc(w, isWordBoundary)
	}
	for _, k := range keywords {
		if slices.ContainsFunc(words, func(w string) bool { return strings.EqualFold(w, k) }) {
			return true
		}
	}
	return false
}

func isWordBoundary(r rune) bool {
	return strings.ContainsRune(`.,;:!?"'()[]{}`, r)
}
