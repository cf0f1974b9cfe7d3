package handler

import (
	"net/http"

	"foodapp/internal/config"
	"foodapp/internal/middleware"
	"foodapp/internal/repository"
	"foodapp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 日付はYYYY-MM-DD
type PromoCodeCreateRequest struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
	IsActive        *bool  `json:"is_active"`
	ValidFrom       string `json:"valid_from"`
	ValidTo         string `json:"valid_to"`
}

type AdminPromoCodeHandler struct {
	uc *usecase.PromoCodeUsecase
}

func NewAdminPromoCodeHandler(uc *usecase.PromoCodeUsecase) *AdminPromoCodeHandler {
	return &AdminPromoCodeHandler{uc: uc}
}

func (h *AdminPromoCodeHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	admin := e.Group("/admin/promo-codes")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.TokenVersionGuard(userRepo))
	admin.Use(middleware.AdminRoleGuard())

	admin.GET("", h.list)
	admin.POST("", h.create)
	admin.PATCH("/:id/deactivate", h.deactivate)
	admin.DELETE("/:id", h.delete)
}

func (h *AdminPromoCodeHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), getActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminPromoCodeHandler) create(c echo.Context) error {
	var req PromoCodeCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), getActor(c), usecase.PromoCodeInput{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		IsActive:        req.IsActive,
		ValidFrom:       req.ValidFrom,
		ValidTo:         req.ValidTo,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AdminPromoCodeHandler) deactivate(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Deactivate(c.Request().Context(), getActor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminPromoCodeHandler) delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), getActor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
