package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"speech-summarizer/internal/app/api"
	apperrors "speech-summarizer/internal/app/errors"
	"speech-summarizer/internal/app/logging"
)

// Orchestrator transcribes a file and optionally summarizes the transcript.
// It holds no per-request state and is safe for concurrent use.
type Orchestrator struct {
	transcriber api.Transcriber
	summarizer  api.Summarizer
	logger      *zap.Logger
	metrics     *Metrics
}

// New creates an Orchestrator. A nil metrics gets a private registry.
func New(transcriber api.Transcriber, summarizer api.Summarizer, logger *zap.Logger, metrics *Metrics) *Orchestrator {
	if metrics == nil {
		metrics = NewMetrics(prometheus.NewRegistry())
	}
	return &Orchestrator{
		transcriber: transcriber,
		summarizer:  summarizer,
		logger:      logging.Component(logger, "orchestrator"),
		metrics:     metrics,
	}
}

// Execute runs transcription and, if requested, summarization. Classified
// service errors are reported through Result.Err with a nil error; the
// summarizer is not called after a failed transcription. Any other error
// is returned.
func (o *Orchestrator) Execute(ctx context.Context, req api.Request) (api.Result, error) {
	start := time.Now()
	text, err := o.transcriber.Convert(ctx, req.FileName)
	o.metrics.ObserveStage(StageTranscribe, time.Since(start))
	if err != nil {
		return o.fail(req, StageTranscribe, err)
	}
	o.logger.Debug("Speech converted to text successfully",
		zap.String("file", req.FileName),
		zap.Int("length", len(text)),
	)

	if !req.Summarize {
		o.metrics.RecordSuccess(false)
		return api.Result{Text: text}, nil
	}

	start = time.Now()
	summary, err := o.summarizer.Summarize(ctx, text)
	o.metrics.ObserveStage(StageSummarize, time.Since(start))
	if err != nil {
		return o.fail(req, StageSummarize, err)
	}
	o.logger.Debug("Speech summarized successfully",
		zap.String("file", req.FileName),
		zap.Int("length", len(summary)),
	)

	o.metrics.RecordSuccess(true)
	return api.Result{Text: summary, Summarized: true}, nil
}

func (o *Orchestrator) fail(req api.Request, stage string, err error) (api.Result, error) {
	if se, ok := apperrors.As(err); ok {
		o.logger.Error(se.Error(),
			zap.String("file", req.FileName),
			zap.String("stage", stage),
			zap.Int("code", int(se.Code)),
		)
		o.metrics.RecordServiceError(req.Summarize, se.Code)
		return api.Result{Err: se}, nil
	}

	o.metrics.RecordFailure(req.Summarize)
	return api.Result{}, fmt.Errorf("%s %s: %w", stage, req.FileName, err)
}
