package server

import (
	"foodapp/internal/config"
	"foodapp/internal/handler"
	"foodapp/internal/repository"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth       *handler.AuthHandler
	Food       *handler.FoodHandler
	AdminFood  *handler.AdminFoodHandler
	Order      *handler.OrderHandler
	AdminOrder *handler.AdminOrderHandler
	AdminPromo *handler.AdminPromoCodeHandler
	AdminUser  *handler.AdminUserHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository, h Handlers) {
	h.Auth.RegisterRoutes(e, cfg, userRepo)
	h.Food.RegisterRoutes(e, cfg, userRepo)
	h.AdminFood.RegisterRoutes(e, cfg, userRepo)
	h.Order.RegisterRoutes(e, cfg, userRepo)
	h.AdminOrder.RegisterRoutes(e, cfg, userRepo)
	h.AdminPromo.RegisterRoutes(e, cfg, userRepo)
	h.AdminUser.RegisterRoutes(e, cfg, userRepo)
}
