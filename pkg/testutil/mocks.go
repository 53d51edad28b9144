package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockConfirmer answers confirmation questions from expectations set with On
type MockConfirmer struct {
	mock.Mock
}

// Confirm records the question and returns the configured answer
func (m *MockConfirmer) Confirm(question string) (bool, error) {
	args := m.Called(question)
	return args.Bool(0), args.Error(1)
}

// NewAnsweringConfirmer returns a confirmer giving the answers in order,
// whatever the question
func NewAnsweringConfirmer(answers ...bool) *MockConfirmer {
	m := &MockConfirmer{}
	for _, a := range answers {
		m.On("Confirm", mock.Anything).Return(a, nil).Once()
	}
	return m
}
