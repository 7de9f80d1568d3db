package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"speech-summarizer/internal/api/errors"
	"speech-summarizer/internal/api/middleware"
	"speech-summarizer/internal/app/api"
)

const indexTemplate = "index.html"

type sumForm struct {
	FileName  string `form:"file_name" binding:"required"`
	Summarize string `form:"summarize"`
}

type pageData struct {
	FileName  string
	Summarize bool
	Answer    string
	Error     string
}

// Index handles GET /
func (h *SummaryHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, pageData{})
}

// RedirectIndex handles GET /sum
func (h *SummaryHandler) RedirectIndex(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// Submit handles POST /sum
// Runs the request from the form and renders the answer into the page.
// A classified service error is rendered in place of the answer.
func (h *SummaryHandler) Submit(c *gin.Context) {
	var form sumForm
	if err := middleware.ValidateForm(c, &form); err != nil {
		c.HTML(http.StatusUnprocessableEntity, indexTemplate, pageData{
			Error: "Please provide the name of the file to transcribe.",
		})
		return
	}

	req := api.Request{
		FileName:  strings.TrimSpace(form.FileName),
		Summarize: parseFlag(form.Summarize),
	}
	page := pageData{FileName: req.FileName, Summarize: req.Summarize}

	result, err := h.executor.Execute(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		h.logger.Error("Internal server error",
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		page.Error = errors.InternalMessage
		c.HTML(http.StatusInternalServerError, indexTemplate, page)
		return
	}

	if result.OK() {
		page.Answer = result.Text
	} else {
		page.Error = result.String()
	}
	c.HTML(http.StatusOK, indexTemplate, page)
}

// parseFlag accepts the values browsers and scripts send for a checkbox.
func parseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "yes":
		return true
	}
	flag, err := strconv.ParseBool(value)
	return err == nil && flag
}
