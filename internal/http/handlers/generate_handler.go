package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/proposal-backend/internal/dto"
	"github.com/ignatzorin/proposal-backend/internal/http/middleware"
	"github.com/ignatzorin/proposal-backend/internal/logger"
	"github.com/ignatzorin/proposal-backend/internal/metrics"
	"github.com/ignatzorin/proposal-backend/internal/pkg/apperror"
	"github.com/ignatzorin/proposal-backend/internal/usecase/generate"
)

// GenerateHandler проксирует промпт провайдеру генерации текста.
type GenerateHandler struct {
	generate *generate.GenerateProposalUseCase
	metrics  *metrics.Metrics
}

// NewGenerateHandler создаёт handler. metrics может быть nil.
func NewGenerateHandler(uc *generate.GenerateProposalUseCase, m *metrics.Metrics) *GenerateHandler {
	return &GenerateHandler{generate: uc, metrics: m}
}

// Generate обрабатывает POST /api/generate. Ошибки отдаются через c.Error,
// ответ на них пишет middleware.ErrorHandler.
func (h *GenerateHandler) Generate(c *gin.Context) {
	// Конфигурация проверяется до разбора тела: без провайдера ответ всегда один.
	if !h.generate.Enabled() {
		h.observe(metrics.OutcomeMisconfigured)
		abortWithError(c, apperror.ErrNoProvider)
		return
	}

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.observe(metrics.OutcomeBadRequest)
		logger.Get().WithFields(logrus.Fields{
			"error":      err.Error(),
			"request_id": middleware.RequestID(c),
		}).Debug("generate: некорректное тело запроса")
		abortWithError(c, apperror.ErrInvalidBody)
		return
	}

	result, err := h.generate.Execute(c.Request.Context(), req.Prompt)
	if err != nil {
		logger.Get().WithFields(logrus.Fields{
			"error":      err.Error(),
			"request_id": middleware.RequestID(c),
			"prompt_len": len(req.Prompt),
		}).Error("generate: вызов провайдера завершился ошибкой")
		h.observe(outcomeFor(err))
		abortWithError(c, err)
		return
	}

	h.observe(metrics.OutcomeOK)
	c.JSON(http.StatusOK, dto.GenerateResponse{Result: result})
}

func (h *GenerateHandler) observe(outcome string) {
	if h.metrics != nil {
		h.metrics.ObserveGenerate(outcome)
	}
}

func outcomeFor(err error) string {
	switch {
	case apperror.IsMisconfigured(err):
		return metrics.OutcomeMisconfigured
	case apperror.IsValidation(err):
		return metrics.OutcomeBadRequest
	default:
		return metrics.OutcomeUpstreamFailed
	}
}
