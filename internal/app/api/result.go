package api

import (
	apperrors "speech-summarizer/internal/app/errors"
)

// Request asks for the transcript of FileName, summarized when Summarize
// is set.
type Request struct {
	FileName  string `json:"file_name" form:"file_name" binding:"required"`
	Summarize bool   `json:"summarize" form:"summarize"`
}

// Result is the outcome of one execution: either Text or a classified Err.
type Result struct {
	Text       string
	Summarized bool
	Err        *apperrors.ServiceError
}

// OK reports whether the execution produced text.
func (r Result) OK() bool {
	return r.Err == nil
}

// String returns the text, or the error description for a failed run.
func (r Result) String() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Text
}
