package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/proposal-backend/internal/dto"
)

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	providerEnabled bool
}

// NewHealthHandler создаёт новый health handler.
func NewHealthHandler(providerEnabled bool) *HealthHandler {
	return &HealthHandler{providerEnabled: providerEnabled}
}

// Health обрабатывает GET /health.
// Выключенный провайдер не делает сервис нездоровым: прокси отвечает, просто с ошибкой конфигурации.
func (h *HealthHandler) Health(c *gin.Context) {
	provider := "disabled"
	if h.providerEnabled {
		provider = "enabled"
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Checks:    map[string]string{"provider": provider},
	})
}
