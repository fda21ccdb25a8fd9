package apiutil

import "fmt"

type Code int

const (
	BadRequestCode      Code = 400
	UnauthenticatedCode Code = 401
	NotFoundCode        Code = 404
	InternalErrorCode   Code = 500
)

var ErrStrMap = map[Code]string{
	BadRequestCode:      "bad request",
	UnauthenticatedCode: "unauthenticated",
	NotFoundCode:        "not found",
	InternalErrorCode:   "internal server error",
}

type AppError struct {
	Code Code
	Msg  string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Msg)
}

func New(code Code, msg string) *AppError {
	return &AppError{Code: code, Msg: msg}
}
