package handler

import (
	"net/http"

	"foodapp/internal/config"
	"foodapp/internal/middleware"
	"foodapp/internal/repository"
	"foodapp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /foods の公開API
type FoodHandler struct {
	uc *usecase.FoodUsecase
}

// DI
func NewFoodHandler(uc *usecase.FoodUsecase) *FoodHandler {
	return &FoodHandler{uc: uc}
}

// ログインは任意。管理者なら販売停止中も見える
func (h *FoodHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/foods")
	g.Use(middleware.OptionalAuthJWT(cfg))
	g.Use(middleware.TokenVersionGuard(userRepo))

	g.GET("", h.list)
	g.GET("/:id", h.detail)
}

func (h *FoodHandler) list(c echo.Context) error {
	// page（default 1）
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return writeError(c, err)
	}
	// limit（default 20）
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ListFoods(c.Request().Context(), getActor(c), usecase.ListFoodsInput{
		Page:     page,
		Limit:    limit,
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *FoodHandler) detail(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}

	f, err := h.uc.GetFood(c.Request().Context(), getActor(c), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, f)
}
