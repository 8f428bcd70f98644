package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashquiz/internal/models"
)

func TestCard_CountersAndAccuracy(t *testing.T) {
	card := &models.Card{Front: "2+2", Back: "4"}

	assert.Equal(t, 0.0, card.Accuracy(), "accuracy is 0 when never shown")
	assert.Equal(t, 0, card.TimesIncorrect())

	card.Record(false)
	card.Record(true)
	card.Record(true)
	card.Record(true)

	assert.Equal(t, 4, card.TimesShown)
	assert.Equal(t, 3, card.TimesCorrect)
	assert.Equal(t, 1, card.TimesIncorrect())
	assert.InDelta(t, 0.75, card.Accuracy(), 1e-9)
}

func TestNewSessionStats_MixedOutcomes(t *testing.T) {
	a := &models.Card{Front: "a", Back: "1"}
	b := &models.Card{Front: "b", Back: "2"}
	c := &models.Card{Front: "c", Back: "3"}

	stats := models.NewSessionStats([]models.AnswerResult{
		{Card: a, UserAnswer: "1", IsCorrect: true},
		{Card: b, UserAnswer: "x", IsCorrect: false},
		{Card: c, UserAnswer: "3", IsCorrect: true},
	})

	assert.Equal(t, 3, stats.TotalQuestions)
	assert.Equal(t, 2, stats.CorrectAnswers)
	assert.Equal(t, 1, stats.IncorrectAnswers())
	assert.InDelta(t, 66.7, stats.AccuracyPercent(), 0.05)
	require.Len(t, stats.MissedCards(), 1)
	assert.Same(t, b, stats.MissedCards()[0])
}

func TestSessionStats_Empty(t *testing.T) {
	stats := models.NewSessionStats(nil)

	assert.Equal(t, 0, stats.TotalQuestions)
	assert.Equal(t, 0.0, stats.AccuracyPercent())
	assert.Empty(t, stats.MissedCards())
}

func TestSessionStats_MissedCardsDistinctInFirstOccurrenceOrder(t *testing.T) {
	a := &models.Card{Front: "a", Back: "1"}
	b := &models.Card{Front: "b", Back: "2"}
	// Same text as a, but a separate card.
	aTwin := &models.Card{Front: "a", Back: "1"}

	stats := models.NewSessionStats([]models.AnswerResult{
		{Card: b, IsCorrect: false},
		{Card: a, IsCorrect: false},
		{Card: b, IsCorrect: false},
		{Card: aTwin, IsCorrect: false},
		{Card: a, IsCorrect: true},
	})

	missed := stats.MissedCards()
	require.Len(t, missed, 3)
	assert.Same(t, b, missed[0])
	assert.Same(t, a, missed[1])
	assert.Same(t, aTwin, missed[2])
}

func TestNewSessionStats_CopiesResults(t *testing.T) {
	card := &models.Card{Front: "a", Back: "1"}
	results := []models.AnswerResult{{Card: card, IsCorrect: true}}

	stats := models.NewSessionStats(results)
	results[0].IsCorrect = false

	assert.True(t, stats.Results[0].IsCorrect)
}
