package server

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"ai_detector/internal/aidetect"
)

type Handler struct {
	maxInputBytes int
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Full handles GET /full/:text
func (h *Handler) Full(c *gin.Context) {
	text, ok := pathText(c)
	if !ok {
		return
	}
	res, ok := h.analyze(c, text)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res)
}

// Summary handles GET /summary/:text
func (h *Handler) Summary(c *gin.Context) {
	text, ok := pathText(c)
	if !ok {
		return
	}
	res, ok := h.analyze(c, text)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res.Summary())
}

// AIProbability handles GET /ai-probability/:text
func (h *Handler) AIProbability(c *gin.Context) {
	text, ok := pathText(c)
	if !ok {
		return
	}
	res, ok := h.analyze(c, text)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res.Probability())
}

// Analyze handles POST /analyze with a {"text": "..."} body.
func (h *Handler) Analyze(c *gin.Context) {
	if h.maxInputBytes > 0 {
		// Leave room for the JSON envelope around the text.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(h.maxInputBytes)+1024)
	}
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}
	res, ok := h.analyze(c, req.Text)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res)
}

// pathText decodes the :text segment from the escaped request path with
// path rules, so '+' stays a plus sign and %2F becomes a slash.
func pathText(c *gin.Context) (string, bool) {
	prefix := strings.TrimSuffix(c.FullPath(), ":text")
	raw := strings.TrimPrefix(c.Request.URL.EscapedPath(), prefix)
	text, err := url.PathUnescape(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid path encoding: " + err.Error()})
		return "", false
	}
	return text, true
}

// analyze writes the error response itself and reports whether res is usable.
func (h *Handler) analyze(c *gin.Context, text string) (aidetect.Result, bool) {
	if h.maxInputBytes > 0 && len(text) > h.maxInputBytes {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "text too large"})
		return aidetect.Result{}, false
	}
	res, err := aidetect.Analyze(text)
	if err != nil {
		if errors.Is(err, aidetect.ErrEmptyInput) {
			c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return aidetect.Result{}, false
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return aidetect.Result{}, false
	}
	return res, true
}
