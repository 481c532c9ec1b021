package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jobboard/internal/api/middleware"
	"github.com/yoockh/jobboard/internal/utils"
)

type APIError struct {
	Code   utils.Code `json:"code"`
	Detail string     `json:"detail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:   ae.Code,
			Detail: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:   utils.CodeInternal,
		Detail: http.StatusText(status),
	})
}

func writeMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResponse{Message: msg})
}

// requireIdentity reads what BearerAuth stored. Missing means the route was
// wired without the middleware.
func requireIdentity(c *gin.Context) (string, bool) {
	if v, ok := c.Get(middleware.ContextIdentity); ok {
		// may be empty; services treat that as an unknown user
		if s, ok := v.(string); ok {
			return s, true
		}
	}

	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "Not authenticated", nil))
	return "", false
}

func invalidRequest(c *gin.Context, op string, err error) {
	writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request: "+err.Error(), err))
}
