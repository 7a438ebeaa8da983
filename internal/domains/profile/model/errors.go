package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookly-backend/internal/shared/response"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrHistoryEntryNotFound = errors.New("history entry not found")
)

var profileErrorMap = map[error]response.ErrorSpec{
	ErrProfileNotFound: {
		Status:  http.StatusNotFound,
		Code:    "PROFILE_NOT_FOUND",
		Message: "profile not found",
	},
	ErrProfileAlreadyExists: {
		Status:  http.StatusConflict,
		Code:    "PROFILE_ALREADY_EXISTS",
		Message: "a profile already exists for this user",
	},
	ErrHistoryEntryNotFound: {
		Status:  http.StatusNotFound,
		Code:    "HISTORY_ENTRY_NOT_FOUND",
		Message: "book not found in reading history",
	},
}

func HandleProfileError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	response.HandleError(c, err, profileErrorMap)
	return true
}
