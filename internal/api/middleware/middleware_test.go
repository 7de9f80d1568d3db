package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"speech-summarizer/internal/api/errors"
)

func newRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs, *zap.Logger) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	router := gin.New()
	router.Use(RequestID())
	router.Use(StructuredLogging(logger))
	router.Use(ErrorHandler(logger))
	return router, logs, logger
}

func TestRequestID(t *testing.T) {
	router, _, _ := newRouter(t)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}

func TestStructuredLogging(t *testing.T) {
	router, logs, _ := newRouter(t)
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, 0, logs.Len())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, "HTTP Request", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "/ping", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	router, logs, _ := newRouter(t)
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("Recovered from panic").Len())
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "api error rendered as is",
			err:            errors.NewBadRequestError("bad input"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"bad input"}`,
		},
		{
			name:           "unknown error hidden",
			err:            stderrors.New("dial tcp: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, logger := newRouter(t)
			router.GET("/fail", func(c *gin.Context) { HandleError(c, logger, tt.err) })

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(DefaultCORSConfig()))
	router.POST("/api/sum", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/sum", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

type sample struct {
	FileName  string `json:"file_name" form:"file_name" binding:"required"`
	Summarize bool   `json:"summarize" form:"summarize"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		details map[string]string
	}{
		{name: "valid", body: `{"file_name":"clip1.wav","summarize":true}`},
		{name: "missing file name", body: `{"summarize":true}`, details: map[string]string{"file_name": "is required"}},
		{name: "malformed", body: `{"file_name":`, details: map[string]string{"request": "invalid JSON format"}},
		{name: "wrong type", body: `{"file_name":"a.wav","summarize":"maybe"}`, details: map[string]string{"request": "invalid JSON format"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/sum", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req sample
			err := ValidateRequest(c, &req)
			if tt.details == nil {
				require.NoError(t, err)
				assert.Equal(t, sample{FileName: "clip1.wav", Summarize: true}, req)
				return
			}

			var apiErr *errors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, errors.KindValidation, apiErr.Kind)
			assert.Equal(t, "Validation failed", apiErr.Message)
			assert.Equal(t, tt.details, apiErr.Details)
		})
	}
}

func TestValidateForm(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	form := url.Values{"summarize": {"true"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/sum", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var req sample
	err := ValidateForm(c, &req)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, map[string]string{"file_name": "is required"}, apiErr.Details)

	body, err := json.Marshal(apiErr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Validation failed","details":{"file_name":"is required"}}`, string(body))
}
