package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookly-backend/internal/shared/response"
)

var ErrUserFullNotFound = errors.New("neither user nor profile found")

var userFullErrorMap = map[error]response.ErrorSpec{
	ErrUserFullNotFound: {
		Status:  http.StatusNotFound,
		Code:    "USER_AND_PROFILE_NOT_FOUND",
		Message: "user and profile not found",
	},
}

func HandleUserFullError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	response.HandleError(c, err, userFullErrorMap)
	return true
}
