package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockInput is a mock implementation of session.Input
type MockInput struct {
	mock.Mock
}

func (m *MockInput) ReadLine(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// NewScriptedInput returns a MockInput that yields answers in order and then io.EOF.
func NewScriptedInput(answers ...string) *MockInput {
	m := &MockInput{}
	for _, a := range answers {
		m.On("ReadLine", mock.Anything).Return(a, nil).Once()
	}
	m.On("ReadLine", mock.Anything).Return("", io.EOF)
	return m
}
