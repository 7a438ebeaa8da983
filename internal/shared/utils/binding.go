package utils

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// BindJSON decodes the request body into obj. An empty body leaves obj at its zero value.
func BindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
