package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"speech-summarizer/internal/api/errors"
	"speech-summarizer/internal/api/middleware"
	"speech-summarizer/internal/app/api"
)

// SummaryResponse is the body of a successful POST /api/sum
type SummaryResponse struct {
	Answer string `json:"answer"`
}

// Summarize handles POST /api/sum
// Transcribes the referenced file and, if requested, summarizes it.
//
// Request body: {"file_name": string, "summarize": bool}
// 200 {"answer": string}
// 422 validation failure, 502 classified service failure,
// 500 {"error": "Internal Server Error"} for anything else.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req api.Request
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}

	result, err := h.executor.Execute(c.Request.Context(), req)
	if err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}

	if !result.OK() {
		if h.options.LegacyErrorAnswers {
			c.JSON(http.StatusOK, SummaryResponse{Answer: result.String()})
			return
		}
		middleware.HandleError(c, h.logger, errors.NewUpstreamError(result.Err))
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Answer: result.Text})
}
