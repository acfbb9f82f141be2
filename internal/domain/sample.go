package domain

// SampleQuickCache returns the cards a first run starts with.
func SampleQuickCache() *QuickCache {
	mustCard := func(q Question, err error) func(a string, d Difficulty, tags ...Tag) *Flashcard {
		if err != nil {
			panic(err)
		}
		return func(a string, d Difficulty, tags ...Tag) *Flashcard {
			f, err := NewFlashcard(q, Answer(a), tags, d)
			if err != nil {
				panic(err)
			}
			return f
		}
	}

	qc, err := NewQuickCache(
		mustCard(NewOpenEndedQuestion("What is the time complexity of binary search?"))(
			"O(log n)", DifficultyMedium, "Algorithms"),
		mustCard(NewOpenEndedQuestion("Which layer of the OSI model does TCP belong to?"))(
			"Transport", DifficultyLow, "Networking"),
		mustCard(NewMultipleChoiceQuestion("Which data structure is FIFO?", []Choice{"Stack", "Queue", "Tree", "Heap"}))(
			"Queue", DifficultyLow, "DataStructures"),
		mustCard(NewMultipleChoiceQuestion("What does ACID stand for in databases? Pick the A.", []Choice{"Availability", "Atomicity", "Accuracy"}))(
			"Atomicity", DifficultyHigh, "Databases"),
	)
	if err != nil {
		panic(err)
	}
	return qc
}
