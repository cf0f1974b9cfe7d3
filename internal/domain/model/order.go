package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusDelivered OrderStatus = "delivered"
)

// 定義済みの3つのどれか。遷移の順序はここでは見ない
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusDelivered:
		return true
	}
	return false
}

// TotalPriceはサーバーで計算した値だけを入れる（クライアントからは受け取らない）
type Order struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64           `gorm:"not null;index" json:"user_id"`
	Address     string          `gorm:"type:varchar(200);not null" json:"address"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	PromoCodeID *int64          `gorm:"index" json:"promo_code_id"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`

	// 外部キー制約のためだけに持つ。保存は各repositoryで行う
	User      *User       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PromoCode *PromoCode  `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Items     []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
