// Package handlers implements the HTTP endpoint handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/ner-spotlight/pkg/errors"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// writeAppError maps an application error onto its HTTP status and a
// structured body. Internal failures are masked so stack details never leak
// to clients.
func writeAppError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	resp := ErrorResponse{Code: code.String()}
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway && status != http.StatusGatewayTimeout {
		resp.Message = "internal server error"
	} else {
		var appErr *errors.AppError
		if errors.As(err, &appErr) {
			resp.Message = appErr.Message
			resp.Detail = appErr.Detail
		} else {
			resp.Message = err.Error()
		}
	}

	c.AbortWithStatusJSON(status, resp)
}
