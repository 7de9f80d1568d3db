package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockTranscriber is a mock implementation of the api.Transcriber interface
type MockTranscriber struct {
	mock.Mock
}

// NewMockTranscriber creates a MockTranscriber whose expectations are
// asserted when the test ends.
func NewMockTranscriber(t *testing.T) *MockTranscriber {
	m := &MockTranscriber{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Convert implements the api.Transcriber interface
func (m *MockTranscriber) Convert(ctx context.Context, fileName string) (string, error) {
	args := m.Called(ctx, fileName)
	return args.String(0), args.Error(1)
}

// MockSummarizer is a mock implementation of the api.Summarizer interface
type MockSummarizer struct {
	mock.Mock
}

// NewMockSummarizer creates a MockSummarizer whose expectations are
// asserted when the test ends.
func NewMockSummarizer(t *testing.T) *MockSummarizer {
	m := &MockSummarizer{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Summarize implements the api.Summarizer interface
func (m *MockSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}
