package repository

import (
	"context"

	"foodapp/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	// 複数注文の明細をまとめて引く。order_id, id順
	ListByOrderIDs(ctx context.Context, orderIDs []int64) ([]model.OrderItem, error)
	DeleteByOrderID(ctx context.Context, orderID int64) error
	// その商品を参照している明細があるか
	ExistsByFoodID(ctx context.Context, foodID int64) (bool, error)
}
