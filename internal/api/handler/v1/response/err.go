package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"status_code"`
	ErrorMsg   string `json:"error"`
	Detalls    any    `json:"detalls,omitempty"`

	err error
}

func (e *Err) Error() string {
	return fmt.Sprintf("status %v - %v", e.StatusCode, e.ErrorMsg)
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.err != nil {
		zap.L().Error(err.err.Error())
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		ErrorMsg:   err.Error(),
	}
}

func ErrNotFound(what, key string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		ErrorMsg:   fmt.Sprintf("%v not found by %v (%v)", what, key, value),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		ErrorMsg:   err.Error(),
	}
}

// ErrSenseDadesSuficients is the recognized rejection of a Mossos export when
// no traveller passes the completeness check. The breakdown lets the client
// render "Viatgers totals: N, Amb dades completes: 0" instead of the raw
// message.
func ErrSenseDadesSuficients(err error, detalls any) *Err {
	return &Err{
		StatusCode: http.StatusUnprocessableEntity,
		ErrorMsg:   err.Error(),
		Detalls:    detalls,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		ErrorMsg:   "internal server error",
		err:        err,
	}
}
