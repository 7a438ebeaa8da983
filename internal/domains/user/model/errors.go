package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookly-backend/internal/shared/response"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidUserID      = errors.New("invalid user id")
)

var userErrorMap = map[error]response.ErrorSpec{
	ErrUserNotFound: {
		Status:  http.StatusNotFound,
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	},
	// Reported as a bad request rather than a conflict; existing clients depend on 400.
	ErrEmailAlreadyExists: {
		Status:  http.StatusBadRequest,
		Code:    "EMAIL_ALREADY_EXISTS",
		Message: "email already in use",
	},
	ErrInvalidUserID: {
		Status:  http.StatusBadRequest,
		Code:    "INVALID_USER_ID",
		Message: "user id must be a positive integer",
	},
}

// HandleUserError writes the response for err and reports whether it did.
func HandleUserError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	response.HandleError(c, err, userErrorMap)
	return true
}
