package run

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"speech-summarizer/internal/app/api"
	"speech-summarizer/internal/app/batch"
	apperrors "speech-summarizer/internal/app/errors"
	"speech-summarizer/internal/app/testutil"
)

func TestFiles(t *testing.T) {
	t.Run("all succeed", func(t *testing.T) {
		executor := testutil.NewMockExecutor(t)
		executor.On("Execute", mock.Anything, api.Request{FileName: "clip1.wav"}).
			Return(api.Result{Text: "hello world"}, nil).Once()

		var out bytes.Buffer
		err := Files(context.Background(), &out, executor, []string{"clip1.wav"}, batch.Options{}, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "clip1.wav: hello world\n", out.String())
	})

	t.Run("failure makes the command fail", func(t *testing.T) {
		executor := testutil.NewMockExecutor(t)
		executor.On("Execute", mock.Anything, api.Request{FileName: "clip1.wav", Summarize: true}).
			Return(api.Result{Text: "short", Summarized: true}, nil).Once()
		executor.On("Execute", mock.Anything, api.Request{FileName: "clip2.wav", Summarize: true}).
			Return(api.Result{Err: apperrors.New(apperrors.CodeCompletion, "")}, nil).Once()

		var out bytes.Buffer
		err := Files(context.Background(), &out, executor, []string{"clip1.wav", "clip2.wav"},
			batch.Options{Summarize: true}, zap.NewNop())

		assert.EqualError(t, err, "1 of 2 files failed")
		assert.Equal(t, "clip1.wav: short\nclip2.wav: [1002] GPT failed.\n", out.String())
	})
}

func TestCmdFlags(t *testing.T) {
	flag := Cmd.Flags().Lookup("concurrency")
	require.NotNil(t, flag)
	assert.Equal(t, "2", flag.DefValue)
	assert.Error(t, Cmd.Args(Cmd, nil))
}
