package kpi

import (
	"net/http"
	"strconv"

	"go-pms/internal/middleware"
	"go-pms/internal/shared/apperror"
	"go-pms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service  Service
	analyzer Analyzer
	logger   *zap.Logger
}

func NewHandler(service Service, analyzer Analyzer, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("kpi.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kpi.handler")
	}
	return &Handler{service: service, analyzer: analyzer, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("kpi request failed",
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
		h.bindError(c, "get all kpis", err)
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
	var req CreateKPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "create kpi", err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) SeedDefaults(c *gin.Context) {
	var req SeedDefaultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "seed default kpis", err)
		return
	}

	resp, err := h.service.SeedDefaults(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateKPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "update kpi", err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ProposeUpdate(c *gin.Context) {
	var req ProposeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "propose kpi update", err)
		return
	}

	resp, err := h.service.ProposeUpdate(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, resp, nil)
}

func (h *Handler) Review(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "review kpi update", err)
		return
	}

	resp, err := h.service.ReviewPendingUpdate(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateQualitative(c *gin.Context) {
	var req QualitativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "update qualitative score", err)
		return
	}

	resp, err := h.service.UpdateQualitative(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "KPI deleted successfully"}, nil)
}

func (h *Handler) Templates(c *gin.Context) {
	resp, err := h.service.Templates(c.Query("employer_type"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Analyze runs bulk analysis inline, or queues it when async=true.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "analyze kpis", err)
		return
	}
	caller := middleware.CallerFrom(c)

	async, _ := strconv.ParseBool(c.DefaultQuery("async", "false"))
	if async {
		resp, err := h.analyzer.Enqueue(c.Request.Context(), caller, req)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusAccepted, resp, nil)
		return
	}

	resp, err := h.analyzer.Analyze(c.Request.Context(), caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
