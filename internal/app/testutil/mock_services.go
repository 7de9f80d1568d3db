package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"speech-summarizer/internal/app/api"
)

// MockExecutor is a mock implementation of the api.Executor interface
type MockExecutor struct {
	mock.Mock
}

// NewMockExecutor creates a MockExecutor whose expectations are asserted
// when the test ends.
func NewMockExecutor(t *testing.T) *MockExecutor {
	m := &MockExecutor{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Execute records the call and returns the configured result
func (m *MockExecutor) Execute(ctx context.Context, req api.Request) (api.Result, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(api.Result), args.Error(1)
}
