package domain

// Statistics counts how often a flashcard was tested and answered correctly.
type Statistics struct {
	TimesTested        int `json:"timesTested"`
	TimesTestedCorrect int `json:"timesTestedCorrect"`
}

// Record returns the statistics after one more test.
func (s Statistics) Record(correct bool) Statistics {
	s.TimesTested++
	if correct {
		s.TimesTestedCorrect++
	}
	return s
}

// Add sums two sets of statistics.
func (s Statistics) Add(other Statistics) Statistics {
	return Statistics{
		TimesTested:        s.TimesTested + other.TimesTested,
		TimesTestedCorrect: s.TimesTestedCorrect + other.TimesTestedCorrect,
	}
}

// TimesTestedWrong is the number of incorrect attempts.
func (s Statistics) TimesTestedWrong() int {
	return s.TimesTested - s.TimesTestedCorrect
}

// CorrectPercentage returns 0 for an untested card.
func (s Statistics) CorrectPercentage() float64 {
	if s.TimesTested == 0 {
		return 0
	}
	return float64(s.TimesTestedCorrect) / float64(s.TimesTested) * 100
}

// Validate rejects negative counters and more correct answers than tests.
func (s Statistics) Validate() error {
	if s.TimesTested < 0 || s.TimesTestedCorrect < 0 || s.TimesTestedCorrect > s.TimesTested {
		return ErrInvalidStatistics
	}
	return nil
}
