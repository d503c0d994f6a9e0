package rbac

import (
	"net/http"
	"strings"

	"go-pms/internal/domain"
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
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

// Enforce answers whether the caller's own role may perform resource:action.
func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	req.Role = c.GetString("role")

	var body struct {
		Resource string `json:"resource" binding:"required"`
		Action   string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", err.Error())
		return
	}
	req.Resource = strings.TrimSpace(body.Resource)
	req.Action = strings.TrimSpace(body.Action)

	allowed, err := h.service.Enforce(req)
	if err != nil {
		h.logger.Error("rbac enforce failed", zap.Error(err))
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) MyPermissions(c *gin.Context) {
	perms, err := h.service.PermissionsForRole(c.GetString("role"))
	if err != nil {
		h.logger.Error("rbac list permissions failed", zap.Error(err))
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, perms, nil)
}

func (h *Handler) Reload(c *gin.Context) {
	if err := h.service.Reload(); err != nil {
		h.logger.Error("rbac reload failed", zap.Error(err))
		response.FromError(c, apperror.Wrap(err, apperror.CodeInternalError, "Failed to reload RBAC policy", http.StatusInternalServerError))
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reloaded": true}, nil)
}
