package kpisummary

import (
	"net/http"

	"go-pms/internal/middleware"
	"go-pms/internal/shared/apperror"
	"go-pms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("kpisummary.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kpisummary.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetScore(c *gin.Context) {
	var q ScoreQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http get score validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", err.Error())
		return
	}

	resp, err := h.service.GetScore(c.Request.Context(), middleware.CallerFrom(c), q)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("score request failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
