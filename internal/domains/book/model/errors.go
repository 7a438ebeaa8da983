package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookly-backend/internal/shared/response"
)

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrInvalidBookID = errors.New("invalid book id")
)

var bookErrorMap = map[error]response.ErrorSpec{
	ErrBookNotFound:  {Status: http.StatusNotFound, Code: "BOOK_NOT_FOUND", Message: "book not found"},
	ErrInvalidBookID: {Status: http.StatusBadRequest, Code: "INVALID_BOOK_ID", Message: "book id must be a positive integer"},
}

func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	response.HandleError(c, err, bookErrorMap)
	return true
}
