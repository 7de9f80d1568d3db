package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"speech-summarizer/internal/app/api"
	apperrors "speech-summarizer/internal/app/errors"
	"speech-summarizer/internal/app/testutil"
)

type fixture struct {
	transcriber *testutil.MockTranscriber
	summarizer  *testutil.MockSummarizer
	metrics     *Metrics
	logs        *observer.ObservedLogs
	orch        *Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	f := &fixture{
		transcriber: testutil.NewMockTranscriber(t),
		summarizer:  testutil.NewMockSummarizer(t),
		metrics:     NewMetrics(prometheus.NewRegistry()),
		logs:        logs,
	}
	f.orch = New(f.transcriber, f.summarizer, zap.New(core), f.metrics)
	return f
}

func (f *fixture) executions(outcome string, summarize bool) float64 {
	return promtestutil.ToFloat64(f.metrics.executions.WithLabelValues(outcome, fmt.Sprint(summarize)))
}

func TestExecute_TranscriptOnly(t *testing.T) {
	f := newFixture(t)
	f.transcriber.On("Convert", mock.Anything, "clip1.wav").Return("hello world", nil).Once()

	result, err := f.orch.Execute(context.Background(), api.Request{FileName: "clip1.wav"})
	require.NoError(t, err)

	assert.True(t, result.OK())
	assert.False(t, result.Summarized)
	assert.Equal(t, "hello world", result.Text)
	assert.Equal(t, "hello world", result.String())
	f.summarizer.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
	assert.Equal(t, 1.0, f.executions(OutcomeSuccess, false))
}

func TestExecute_Summarize(t *testing.T) {
	f := newFixture(t)
	f.transcriber.On("Convert", mock.Anything, "clip1.wav").Return(testutil.TestTranscript, nil).Once()
	f.summarizer.On("Summarize", mock.Anything, testutil.TestTranscript).Return(testutil.TestSummary, nil).Once()

	result, err := f.orch.Execute(context.Background(), api.Request{FileName: "clip1.wav", Summarize: true})
	require.NoError(t, err)

	assert.True(t, result.OK())
	assert.True(t, result.Summarized)
	assert.Equal(t, testutil.TestSummary, result.Text)
	assert.Equal(t, 1.0, f.executions(OutcomeSuccess, true))
	assert.Equal(t, 2, promtestutil.CollectAndCount(f.metrics.stageDuration))
}

func TestExecute_TranscriptionErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     *apperrors.ServiceError
		code    apperrors.Code
		message string
	}{
		{
			name:    "connection error",
			err:     apperrors.STTConnection(errors.New("invalid credentials")),
			code:    apperrors.CodeSTTConnection,
			message: "Connection to Google Speech to Text API Failed.",
		},
		{
			name:    "operation error",
			err:     apperrors.STTOperation(errors.New("deadline exceeded")),
			code:    apperrors.CodeSTTOperation,
			message: "Getting text from Google Speech to Text Failed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.transcriber.On("Convert", mock.Anything, "clip1.wav").Return("", tt.err).Once()

			result, err := f.orch.Execute(context.Background(), api.Request{FileName: "clip1.wav", Summarize: true})
			require.NoError(t, err)

			assert.False(t, result.OK())
			require.NotNil(t, result.Err)
			assert.Equal(t, tt.code, result.Err.Code)
			assert.Contains(t, result.String(), tt.message)
			assert.Empty(t, result.Text)
			f.summarizer.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)

			assert.Equal(t, 1.0, f.executions(OutcomeClassifiedError, true))
			assert.Equal(t, 1.0, promtestutil.ToFloat64(f.metrics.serviceErrors.WithLabelValues(fmt.Sprint(int(tt.code)))))
			assert.Equal(t, 1, f.logs.FilterLevelExact(zapcore.ErrorLevel).Len())
		})
	}
}

func TestExecute_CompletionErrorDiscardsTranscript(t *testing.T) {
	f := newFixture(t)
	f.transcriber.On("Convert", mock.Anything, "clip1.wav").Return(testutil.TestTranscript, nil).Once()
	f.summarizer.On("Summarize", mock.Anything, testutil.TestTranscript).
		Return("", apperrors.Completion(errors.New("rate limited"))).Once()

	result, err := f.orch.Execute(context.Background(), api.Request{FileName: "clip1.wav", Summarize: true})
	require.NoError(t, err)

	require.NotNil(t, result.Err)
	assert.Equal(t, apperrors.CodeCompletion, result.Err.Code)
	assert.Contains(t, result.String(), "GPT failed.")
	assert.NotContains(t, result.String(), testutil.TestTranscript)
	assert.Empty(t, result.Text)
}

func TestExecute_UnclassifiedErrorsPropagate(t *testing.T) {
	boom := errors.New("connection reset by peer")

	t.Run("from transcriber", func(t *testing.T) {
		f := newFixture(t)
		f.transcriber.On("Convert", mock.Anything, "clip1.wav").Return("", boom).Once()

		result, err := f.orch.Execute(context.Background(), api.Request{FileName: "clip1.wav", Summarize: true})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, api.Result{}, result)
		f.summarizer.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
		assert.Equal(t, 1.0, f.executions(OutcomeUnclassifiedError, true))
	})

	t.Run("from summarizer", func(t *testing.T) {
		f := newFixture(t)
		f.transcriber.On("Convert", mock.Anything, "clip1.wav").Return("hello", nil).Once()
		f.summarizer.On("Summarize", mock.Anything, "hello").Return("", boom).Once()

		_, err := f.orch.Execute(context.Background(), api.Request{FileName: "clip1.wav", Summarize: true})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.False(t, apperrors.IsClassified(err))
	})
}

func TestExecute_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.transcriber.On("Convert", mock.Anything, "clip1.wav").Return("hello world", nil).Twice()
	f.summarizer.On("Summarize", mock.Anything, "hello world").Return("greeting", nil).Twice()

	req := api.Request{FileName: "clip1.wav", Summarize: true}
	first, err := f.orch.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := f.orch.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2.0, f.executions(OutcomeSuccess, true))
}

func TestExecute_Concurrent(t *testing.T) {
	f := newFixture(t)
	const n = 20
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("clip%d.wav", i)
		f.transcriber.On("Convert", mock.Anything, name).Return("text of "+name, nil).Once()
		f.summarizer.On("Summarize", mock.Anything, "text of "+name).Return("summary of "+name, nil).Once()
	}

	results := make([]api.Result, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := f.orch.Execute(context.Background(), api.Request{FileName: fmt.Sprintf("clip%d.wav", i), Summarize: true})
			assert.NoError(t, err)
			results[i] = r
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("summary of clip%d.wav", i), r.Text)
	}
	assert.Equal(t, float64(n), f.executions(OutcomeSuccess, true))
}

func TestNew_DefaultMetrics(t *testing.T) {
	transcriber := testutil.NewMockTranscriber(t)
	transcriber.On("Convert", mock.Anything, "a.wav").Return("a", nil).Once()

	o := New(transcriber, nil, nil, nil)
	result, err := o.Execute(context.Background(), api.Request{FileName: "a.wav"})
	require.NoError(t, err)
	assert.Equal(t, "a", result.Text)
}
