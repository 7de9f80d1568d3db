// Package testutil provides test doubles and fixtures shared by the
// speech-summarizer packages.
//
// The mocks are built on testify's mock package:
//
//	transcriber := testutil.NewMockTranscriber(t)
//	transcriber.On("Convert", mock.Anything, "clip1.wav").Return("hello world", nil)
//
// MockTranscriber and MockSummarizer stand in for the remote clients,
// MockExecutor stands in for the orchestrator in HTTP and CLI tests.
// Fixtures provides a complete, valid configuration.
package testutil
