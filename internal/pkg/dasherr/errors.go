package dasherr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a route or resource does not exist.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]any

// DashError is an error that is rendered to the client as {code, message, ...extras}
// with its own HTTP status. Dataset failures never use it: those are reported inside
// a 200 envelope instead.
type DashError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *DashError {
	return &DashError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e DashError) Msg(format string, parts ...any) *DashError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e DashError) WithExtras(extras Extras) *DashError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *DashError {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *DashError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
