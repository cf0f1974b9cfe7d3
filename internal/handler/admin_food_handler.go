package handler

import (
	"net/http"

	"foodapp/internal/config"
	"foodapp/internal/middleware"
	"foodapp/internal/repository"
	"foodapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// priceは"12.50"でも12.50でも受け付ける
type FoodRequest struct {
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
	IsAvailable *bool            `json:"is_available"`
	ImageURL    string           `json:"image_url"`
}

// /admin/foods
type AdminFoodHandler struct {
	uc *usecase.FoodUsecase
}

// DI
func NewAdminFoodHandler(uc *usecase.FoodUsecase) *AdminFoodHandler {
	return &AdminFoodHandler{uc: uc}
}

func (h *AdminFoodHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	admin := e.Group("/admin/foods")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.TokenVersionGuard(userRepo))
	admin.Use(middleware.AdminRoleGuard())

	admin.GET("", h.list)
	admin.GET("/:id", h.detail)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

func (h *AdminFoodHandler) list(c echo.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return writeError(c, err)
	}
	limit, err := queryInt(c, "limit", 50)
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

func (h *AdminFoodHandler) detail(c echo.Context) error {
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

func (h *AdminFoodHandler) create(c echo.Context) error {
	in, err := bindFoodRequest(c)
	if err != nil {
		return writeError(c, err)
	}

	f, err := h.uc.AdminCreateFood(c.Request().Context(), getActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *AdminFoodHandler) update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	in, err := bindFoodRequest(c)
	if err != nil {
		return writeError(c, err)
	}

	f, err := h.uc.AdminUpdateFood(c.Request().Context(), getActor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *AdminFoodHandler) delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.AdminDeleteFood(c.Request().Context(), getActor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func bindFoodRequest(c echo.Context) (usecase.FoodInput, error) {
	var req FoodRequest
	if err := c.Bind(&req); err != nil {
		return usecase.FoodInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Price == nil {
		return usecase.FoodInput{}, usecase.NewValidationError(map[string]string{"price": "This field is required."})
	}

	return usecase.FoodInput{
		Name:        req.Name,
		Price:       *req.Price,
		Category:    req.Category,
		IsAvailable: req.IsAvailable,
		ImageURL:    req.ImageURL,
	}, nil
}
