package handler

import (
	"net/http"

	"foodapp/internal/config"
	"foodapp/internal/middleware"
	"foodapp/internal/repository"
	"foodapp/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderLineRequest struct {
	FoodID   int64 `json:"food_id"`
	Quantity int64 `json:"quantity"`
}

// 価格は受け取らない（サーバーでカタログから計算する）
type OrderCreateRequest struct {
	Address   string             `json:"address"`
	Items     []OrderLineRequest `json:"items"`
	PromoCode *string            `json:"promo_code"`
}

type OrderCreateResponse struct {
	Message    string `json:"message"`
	OrderID    int64  `json:"order_id"`
	TotalPrice string `json:"total_price"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.TokenVersionGuard(userRepo))

	g.POST("/create", h.create)
	g.GET("/my", h.list)
	g.GET("/:id", h.detail)
}

func (h *OrderHandler) create(c echo.Context) error {
	actor := getActor(c)
	if !actor.Authenticated() {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := usecase.CreateOrderInput{
		Address:   req.Address,
		PromoCode: req.PromoCode,
	}
	// itemsが無いときはnilのまま渡す（required扱い）
	if req.Items != nil {
		in.Items = make([]usecase.OrderLineInput, 0, len(req.Items))
		for _, it := range req.Items {
			in.Items = append(in.Items, usecase.OrderLineInput{FoodID: it.FoodID, Quantity: it.Quantity})
		}
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), actor, in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, OrderCreateResponse{
		Message:    "Order created",
		OrderID:    out.ID,
		TotalPrice: out.TotalPrice.StringFixed(2),
	})
}

func (h *OrderHandler) list(c echo.Context) error {
	actor := getActor(c)
	if !actor.Authenticated() {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	page, err := queryInt(c, "page", 1)
	if err != nil {
		return writeError(c, err)
	}
	limit, err := queryInt(c, "limit", 50)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ListMyOrders(c.Request().Context(), actor, page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	actor := getActor(c)
	if !actor.Authenticated() {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.GetMyOrderDetail(c.Request().Context(), actor, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
