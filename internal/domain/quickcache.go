package domain

import "slices"

// QuickCache is the ordered collection of flashcards for a session.
// It never holds two flashcards for which IsSameFlashcard is true.
type QuickCache struct {
	flashcards []*Flashcard
}

// NewQuickCache returns a QuickCache holding cards, or ErrDuplicateFlashcard.
func NewQuickCache(cards ...*Flashcard) (*QuickCache, error) {
	qc := &QuickCache{}
	if err := qc.SetFlashcards(cards); err != nil {
		return nil, err
	}
	return qc, nil
}

// Contains reports whether a card equivalent to f is present.
func (qc *QuickCache) Contains(f *Flashcard) bool {
	return qc.indexOf(f) >= 0
}

func (qc *QuickCache) indexOf(f *Flashcard) int {
	return slices.IndexFunc(qc.flashcards, f.IsSameFlashcard)
}

// Add appends f. Returns ErrDuplicateFlashcard if an equivalent card exists.
func (qc *QuickCache) Add(f *Flashcard) error {
	if qc.Contains(f) {
		return ErrDuplicateFlashcard
	}
	qc.flashcards = append(qc.flashcards, f)
	return nil
}

// SetFlashcard replaces target with edited in place.
// Returns ErrFlashcardNotFound when target is absent and ErrDuplicateFlashcard
// when edited is equivalent to a different card already present.
func (qc *QuickCache) SetFlashcard(target, edited *Flashcard) error {
	i := slices.IndexFunc(qc.flashcards, func(f *Flashcard) bool { return f == target })
	if i < 0 {
		i = qc.indexOf(target)
	}
	if i < 0 {
		return ErrFlashcardNotFound
	}
	if !qc.flashcards[i].IsSameFlashcard(edited) && qc.Contains(edited) {
		return ErrDuplicateFlashcard
	}
	qc.flashcards[i] = edited
	return nil
}

// Remove deletes the card equivalent to f.
func (qc *QuickCache) Remove(f *Flashcard) error {
	i := qc.indexOf(f)
	if i < 0 {
		return ErrFlashcardNotFound
	}
	qc.flashcards = slices.Delete(qc.flashcards, i, i+1)
	return nil
}

// SetFlashcards replaces the whole contents. The cache is left untouched
// when cards contains duplicates.
func (qc *QuickCache) SetFlashcards(cards []*Flashcard) error {
	for i, f := range cards {
		if slices.ContainsFunc(cards[:i], f.IsSameFlashcard) {
			return ErrDuplicateFlashcard
		}
	}
	qc.flashcards = slices.Clone(cards)
	return nil
}

// ResetData replaces the contents with those of other.
func (qc *QuickCache) ResetData(other *QuickCache) {
	qc.flashcards = slices.Clone(other.flashcards)
}

// Flashcards returns the cards in order. The slice is a copy.
func (qc *QuickCache) Flashcards() []*Flashcard {
	return slices.Clone(qc.flashcards)
}

// Len returns the number of flashcards.
func (qc *QuickCache) Len() int {
	return len(qc.flashcards)
}

// Equal compares both caches card by card.
func (qc *QuickCache) Equal(other *QuickCache) bool {
	return slices.EqualFunc(qc.flashcards, other.flashcards, (*Flashcard).Equal)
}
