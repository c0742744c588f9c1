package handlers

import (
	"github.com/gin-gonic/gin"
)

// abortWithError передаёт ошибку в middleware.ErrorHandler, он и формирует ответ.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
