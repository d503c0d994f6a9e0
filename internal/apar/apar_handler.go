package apar

import (
	"fmt"
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
	l := zap.L().Named("apar.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("apar.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("apar request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindError(c *gin.Context, op string, err error) {
	h.logger.Warn("http "+op+" validation failed", zap.Error(err))
	response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", err.Error())
}

func (h *Handler) GetAll(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, "get all apars", err)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), middleware.CallerFrom(c), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(int64(len(resp)), 1, len(resp))
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAparRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "create apar", err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

// Update serves both PATCH and PUT; either is a partial update.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateAparRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "update apar", err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeAparRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "analyze apar", err)
		return
	}

	resp, err := h.service.Analyze(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportPDF(c *gin.Context) {
	id := c.Param("id")
	out, err := h.service.ExportPDF(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="apar-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", out)
}
