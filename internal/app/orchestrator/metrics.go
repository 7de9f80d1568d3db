package orchestrator

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "speech-summarizer/internal/app/errors"
)

// Stages
const (
	StageTranscribe = "transcribe"
	StageSummarize  = "summarize"
)

// Outcomes
const (
	OutcomeSuccess           = "success"
	OutcomeClassifiedError   = "classified_error"
	OutcomeUnclassifiedError = "unclassified_error"
)

// Metrics records execution outcomes and stage latencies.
type Metrics struct {
	executions    *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	serviceErrors *prometheus.CounterVec
}

// NewMetrics registers the orchestrator collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		executions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "speech_summarizer",
			Name:      "executions_total",
			Help:      "Executions by outcome and summarize flag.",
		}, []string{"outcome", "summarize"}),
		stageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "speech_summarizer",
			Name:      "stage_duration_seconds",
			Help:      "Latency of the remote calls per stage.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		}, []string{"stage"}),
		serviceErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "speech_summarizer",
			Name:      "service_errors_total",
			Help:      "Classified service errors by code.",
		}, []string{"code"}),
	}
}

// ObserveStage records the latency of a stage.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordSuccess records an execution that produced text.
func (m *Metrics) RecordSuccess(summarize bool) {
	m.executions.WithLabelValues(OutcomeSuccess, strconv.FormatBool(summarize)).Inc()
}

// RecordServiceError records an execution that ended in a classified error.
func (m *Metrics) RecordServiceError(summarize bool, code apperrors.Code) {
	m.executions.WithLabelValues(OutcomeClassifiedError, strconv.FormatBool(summarize)).Inc()
	m.serviceErrors.WithLabelValues(strconv.Itoa(int(code))).Inc()
}

// RecordFailure records an execution that ended in an unclassified error.
func (m *Metrics) RecordFailure(summarize bool) {
	m.executions.WithLabelValues(OutcomeUnclassifiedError, strconv.FormatBool(summarize)).Inc()
}
