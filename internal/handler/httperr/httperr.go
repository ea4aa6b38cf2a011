package httperr

import (
	"net/http"

	"bookingmx/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const MsgInternal = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithServiceError maps service errors to a status: bad requests and
// missing reservations expose their message, everything else is a bare 500.
func AbortWithServiceError(c *gin.Context, err error) {
	switch {
	case errs.IsBadRequest(err):
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.IsNotFound(err):
		AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, MsgInternal, nil)
	}
}
