package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/ner-spotlight/internal/application/recognition"
	"github.com/turtacn/ner-spotlight/pkg/errors"
)

// RecognitionService is the application-layer dependency of the recognize
// endpoint.
type RecognitionService interface {
	Recognize(ctx context.Context, text string) (*recognition.Result, error)
}

// RecognizeHandler serves POST /api/v1/recognize.
type RecognizeHandler struct {
	service RecognitionService
}

// NewRecognizeHandler constructs a RecognizeHandler.
func NewRecognizeHandler(service RecognitionService) *RecognizeHandler {
	return &RecognizeHandler{service: service}
}

// RecognizeRequest is the request body of the recognize endpoint.
type RecognizeRequest struct {
	Text string `json:"text"`
}

// Recognize runs the recognition pipeline on the request text and returns
// the merged entity spans plus the highlight segments the UI renders.
func (h *RecognizeHandler) Recognize(c *gin.Context) {
	var req RecognizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAppError(c, errors.InvalidParam("request body must be JSON with a text field").WithCause(err))
		return
	}

	result, err := h.service.Recognize(c.Request.Context(), req.Text)
	if err != nil {
		writeAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
