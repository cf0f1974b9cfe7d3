package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type FoodCategory string

const (
	FoodCategoryFastFood FoodCategory = "fastfood"
	FoodCategoryNational FoodCategory = "national"
	FoodCategoryDrink    FoodCategory = "drink"
	FoodCategoryDessert  FoodCategory = "dessert"
)

// カテゴリとして受け付ける値か
func (c FoodCategory) Valid() bool {
	switch c {
	case FoodCategoryFastFood, FoodCategoryNational, FoodCategoryDrink, FoodCategoryDessert:
		return true
	}
	return false
}

// カタログの商品。注文側からは読み取りのみ
type Food struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
	Category    FoodCategory    `gorm:"type:varchar(20);not null;index" json:"category"`
	IsAvailable bool            `gorm:"not null;index" json:"is_available"`
	ImageURL    string          `gorm:"type:varchar(255)" json:"image_url"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
