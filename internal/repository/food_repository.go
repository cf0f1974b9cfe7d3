package repository

import (
	"context"

	"foodapp/internal/domain/model"
)

// 一覧検索
type FoodListQuery struct {
	Page     int
	Limit    int
	Category model.FoodCategory
	// trueなら販売中（is_available=true）だけ
	OnlyAvailable bool
}

// カタログの永続化（保存・取得）だけを約束。
type FoodRepository interface {
	List(ctx context.Context, q FoodListQuery) ([]model.Food, int64, error)
	FindByID(ctx context.Context, id int64) (model.Food, error)

	Create(ctx context.Context, f model.Food) (model.Food, error)
	Update(ctx context.Context, f model.Food) error
	Delete(ctx context.Context, id int64) error
}
