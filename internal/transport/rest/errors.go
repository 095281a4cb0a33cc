package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
)

type errorResponse struct {
	Error string `json:"error"`
}

// errorStatus maps an error category onto an HTTP status. The store API
// reports backend failures as 500, the game API as 503.
func errorStatus(err error, transportStatus int) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrTransport):
		return transportStatus
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}
