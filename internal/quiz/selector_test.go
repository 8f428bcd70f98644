package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vytor/flashquiz/internal/errors"
	"github.com/vytor/flashquiz/internal/quiz"
)

func TestAvailableModes(t *testing.T) {
	assert.Equal(t, []string{"adaptive", "random", "sequential"}, quiz.AvailableModes())
}

func TestCreate_KnownModes(t *testing.T) {
	cards := makeCards(3)

	tests := []struct {
		name string
		want any
	}{
		{quiz.ModeSequential, &quiz.Sequential{}},
		{quiz.ModeRandom, &quiz.Random{}},
		{quiz.ModeAdaptive, &quiz.Adaptive{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := quiz.Create(tt.name, cards, quiz.WithSeed(3))
			require.NoError(t, err)
			assert.IsType(t, tt.want, mode)
			assert.True(t, mode.HasMore())
		})
	}
}

func TestCreate_UnknownModeListsAlternatives(t *testing.T) {
	for _, name := range []string{"shuffle", "", "Sequential", " random"} {
		t.Run(name, func(t *testing.T) {
			mode, err := quiz.Create(name, makeCards(1))

			require.Error(t, err)
			assert.Nil(t, mode)
			assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnknownMode))
			assert.Contains(t, err.Error(), "adaptive, random, sequential")
		})
	}
}

func TestCreate_EmptyDeck(t *testing.T) {
	mode, err := quiz.Create(quiz.ModeSequential, nil)

	require.Error(t, err)
	assert.Nil(t, mode)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidDeck))
}

func TestCreate_RandomWithoutSeedIsPermutation(t *testing.T) {
	cards := makeCards(6)
	mode, err := quiz.Create(quiz.ModeRandom, cards)
	require.NoError(t, err)

	assertPermutation(t, cards, drain(t, mode))
}

func TestCreate_SeedIsReproducible(t *testing.T) {
	cards := makeCards(15)
	a, err := quiz.Create(quiz.ModeRandom, cards, quiz.WithSeed(99))
	require.NoError(t, err)
	b, err := quiz.Create(quiz.ModeRandom, cards, quiz.WithSeed(99))
	require.NoError(t, err)

	assert.Equal(t, drain(t, a), drain(t, b))
}
