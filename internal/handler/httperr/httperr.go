package httperr

import (
	"github.com/gin-gonic/gin"
)

// Codes let clients branch on the failure without parsing messages.
const (
	CodeInvalidRequest      = "invalid_request"
	CodeInvalidReservation  = "invalid_reservation"
	CodeNotFound            = "not_found"
	CodeCapacityExceeded    = "capacity_exceeded"
	CodeDuplicateName       = "duplicate_name"
	CodeIdempotencyConflict = "idempotency_conflict"
	CodeInternal            = "internal"
)

type Body struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string, detail any) Response {
	return Response{
		Status: status,
		Error:  Body{Code: code, Message: msg},
		Detail: detail,
	}
}

// AbortWithError keeps err on the gin context for logging and answers with
// the public message only.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, codeForStatus(status), err, msg, detail)
}

func AbortWithCode(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithCode: err cannot be nil")
	}

	resp := NewResponse(status, code, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func codeForStatus(status int) string {
	switch {
	case status == 404:
		return CodeNotFound
	case status >= 500:
		return CodeInternal
	default:
		return CodeInvalidRequest
	}
}
