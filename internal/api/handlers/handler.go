package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"speech-summarizer/internal/app/api"
	"speech-summarizer/internal/app/logging"
)

// Options tune how results are rendered
type Options struct {
	// LegacyErrorAnswers renders classified errors on the JSON endpoint
	// as a 200 answer holding the error string.
	LegacyErrorAnswers bool
}

// SummaryHandler serves the form page and the JSON endpoint on top of an
// Executor.
type SummaryHandler struct {
	executor api.Executor
	options  Options
	logger   *zap.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(executor api.Executor, options Options, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		executor: executor,
		options:  options,
		logger:   logging.Component(logger, "http"),
	}
}

// RegisterRoutes mounts the page and API routes on router
func RegisterRoutes(router *gin.Engine, h *SummaryHandler) {
	router.SetHTMLTemplate(Templates())

	router.GET("/", h.Index)
	router.GET("/sum", h.RedirectIndex)
	router.POST("/sum", h.Submit)

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/sum", h.Summarize)
	}
}
