package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seelv/dancebook/internal/domain"
)

// Err is the JSON body of every error response.
type Err struct {
	HTTPStatusCode int    `json:"-"`
	Message        string `json:"message"`
	Entity         string `json:"entity,omitempty"`
	Field          string `json:"field,omitempty"`
	RequestID      string `json:"request_id,omitempty"`

	err error
}

func (e *Err) Error() string {
	return e.Message
}

func (e *Err) Unwrap() error {
	return e.err
}

func RenderErr(ctx *gin.Context, e *Err) {
	e.RequestID = requestid.Get(ctx)

	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("internal server error",
			zap.String("request_id", e.RequestID),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.err),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
		err:            err,
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Message:        "unable to authenticate with provided credentials",
		err:            err,
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        err.Error(),
		err:            err,
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusForbidden,
		Message:        err.Error(),
		err:            err,
	}
}

func ErrNotFound(entity, key string, value interface{}) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Message:        fmt.Sprintf("%s with %s %v not found", entity, key, value),
		Entity:         entity,
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusConflict,
		Message:        err.Error(),
		err:            err,
	}
}

func ErrUnprocessable(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnprocessableEntity,
		Message:        err.Error(),
		err:            err,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        "internal server error",
		err:            err,
	}
}

// FromDomain maps an error returned by a service to its response. Errors that
// are not *domain.Error become 500s carrying op for the log.
func FromDomain(op string, err error) *Err {
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		return ErrInternalServerError(fmt.Errorf("%s -> %w", op, err))
	}

	var status int
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrReferentialIntegrity),
		errors.Is(err, domain.ErrState):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrEmptyPack):
		status = http.StatusUnprocessableEntity
	default:
		return ErrInternalServerError(fmt.Errorf("%s -> %w", op, err))
	}

	return &Err{
		HTTPStatusCode: status,
		Message:        domainErr.Msg,
		Entity:         domainErr.Entity,
		Field:          domainErr.Field,
		err:            err,
	}
}
