package handler

import (
	"net/http"

	"foodapp/internal/config"
	"foodapp/internal/domain/model"
	"foodapp/internal/middleware"
	"foodapp/internal/repository"
	"foodapp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 強制ログアウトと監査ログ閲覧（/admin配下）
type AdminUserHandler struct {
	authUC  *usecase.AuthUsecase
	auditUC *usecase.AuditLogUsecase
}

func NewAdminUserHandler(authUC *usecase.AuthUsecase, auditUC *usecase.AuditLogUsecase) *AdminUserHandler {
	return &AdminUserHandler{authUC: authUC, auditUC: auditUC}
}

func (h *AdminUserHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	// /admin 配下は全部「JWT必須 + token_version一致 + admin限定」
	admin := e.Group(
		"/admin",
		middleware.AuthJWT(cfg),
		middleware.TokenVersionGuard(userRepo),
		middleware.AdminRoleGuard(),
	)

	admin.POST("/users/:id/force-logout", h.forceLogout)
	admin.GET("/audit-logs", h.auditLogs)
}

func (h *AdminUserHandler) forceLogout(c echo.Context) error {
	userID, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}

	res, err := h.authUC.ForceLogout(c.Request().Context(), getActor(c), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *AdminUserHandler) auditLogs(c echo.Context) error {
	limit, err := queryInt(c, "limit", 50)
	if err != nil {
		return writeError(c, err)
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return writeError(c, err)
	}
	actorUserID, err := queryInt64Ptr(c, "actor_user_id")
	if err != nil {
		return writeError(c, err)
	}
	resourceID, err := queryInt64Ptr(c, "resource_id")
	if err != nil {
		return writeError(c, err)
	}

	f := repository.AuditLogFilter{
		ActorUserID: actorUserID,
		ResourceID:  resourceID,
		Limit:       limit,
		Offset:      offset,
	}
	if v := c.QueryParam("action"); v != "" {
		a := model.AuditAction(v)
		f.Action = &a
	}
	if v := c.QueryParam("resource_type"); v != "" {
		rt := model.AuditResourceType(v)
		f.ResourceType = &rt
	}

	logs, err := h.auditUC.List(c.Request().Context(), getActor(c), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}
