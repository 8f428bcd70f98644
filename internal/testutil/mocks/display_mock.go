package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/vytor/flashquiz/internal/models"
)

// MockDisplay is a mock implementation of session.Display
type MockDisplay struct {
	mock.Mock
}

func (m *MockDisplay) ShowQuestion(number, total int, front string) {
	m.Called(number, total, front)
}

func (m *MockDisplay) ShowFeedback(correct bool, expected string) {
	m.Called(correct, expected)
}

func (m *MockDisplay) ShowInterrupted() {
	m.Called()
}

func (m *MockDisplay) ShowStats(stats models.SessionStats, detailed bool) {
	m.Called(stats, detailed)
}

// NewQuietDisplay returns a MockDisplay that accepts any call.
func NewQuietDisplay() *MockDisplay {
	m := &MockDisplay{}
	m.On("ShowQuestion", mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.On("ShowFeedback", mock.Anything, mock.Anything).Maybe()
	m.On("ShowInterrupted").Maybe()
	m.On("ShowStats", mock.Anything, mock.Anything).Maybe()
	return m
}
