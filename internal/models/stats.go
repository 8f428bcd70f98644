package models

// SessionStats aggregates the answer results of one quiz session.
type SessionStats struct {
	TotalQuestions int            `json:"total_questions"`
	CorrectAnswers int            `json:"correct_answers"`
	Results        []AnswerResult `json:"results"`
}

// NewSessionStats builds statistics over results. The slice is copied.
func NewSessionStats(results []AnswerResult) SessionStats {
	stats := SessionStats{
		TotalQuestions: len(results),
		Results:        make([]AnswerResult, len(results)),
	}
	copy(stats.Results, results)
	for _, r := range results {
		if r.IsCorrect {
			stats.CorrectAnswers++
		}
	}
	return stats
}

// IncorrectAnswers returns the number of incorrect results.
func (s SessionStats) IncorrectAnswers() int {
	return s.TotalQuestions - s.CorrectAnswers
}

// AccuracyPercent returns 100*correct/total, or 0 when no question was answered.
func (s SessionStats) AccuracyPercent() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalQuestions) * 100
}

// MissedCards returns the distinct cards with at least one incorrect result,
// in order of their first incorrect result.
func (s SessionStats) MissedCards() []*Card {
	seen := make(map[*Card]struct{})
	var missed []*Card
	for _, r := range s.Results {
		if r.IsCorrect {
			continue
		}
		if _, ok := seen[r.Card]; ok {
			continue
		}
		seen[r.Card] = struct{}{}
		missed = append(missed, r.Card)
	}
	return missed
}
