package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrEmptyParameter = errors.New("parameter is empty")

func ParseIDParam(c *gin.Context, param string) (uuid.UUID, error) {
	idStr := c.Param(param)
	if idStr == "" {
		return uuid.Nil, ErrEmptyParameter
	}
	return uuid.Parse(idStr)
}
