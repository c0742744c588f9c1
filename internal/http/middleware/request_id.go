package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	// ContextRequestIDKey ключ id запроса в gin.Context.
	ContextRequestIDKey = "requestID"
)

// RequestIDMiddleware берёт id из заголовка, если он валидный UUID, иначе выдаёт новый.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(ContextRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestID извлекает id запроса из контекста.
func RequestID(c *gin.Context) string {
	return c.GetString(ContextRequestIDKey)
}
