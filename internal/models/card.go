package models

// RawCard is a deck entry as read from a deck source, before trimming and validation.
type RawCard struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back" validate:"required"`
}

// Card is a validated flashcard with per-session counters.
// The session orchestrator is the only writer of the counters.
type Card struct {
	Front        string `json:"front"`
	Back         string `json:"back"`
	TimesShown   int    `json:"times_shown"`
	TimesCorrect int    `json:"times_correct"`
}

// TimesIncorrect returns how many presentations were answered incorrectly.
func (c *Card) TimesIncorrect() int {
	return c.TimesShown - c.TimesCorrect
}

// Accuracy returns TimesCorrect/TimesShown in [0, 1], or 0 when never shown.
func (c *Card) Accuracy() float64 {
	if c.TimesShown == 0 {
		return 0
	}
	return float64(c.TimesCorrect) / float64(c.TimesShown)
}

// Record counts one presentation of the card.
func (c *Card) Record(correct bool) {
	c.TimesShown++
	if correct {
		c.TimesCorrect++
	}
}

// AnswerResult is the immutable outcome of presenting one card.
type AnswerResult struct {
	Card       *Card  `json:"card"`
	UserAnswer string `json:"user_answer"`
	IsCorrect  bool   `json:"is_correct"`
}
