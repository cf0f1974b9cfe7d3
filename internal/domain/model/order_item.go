package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。価格は注文時点のスナップショットで、後からカタログが変わっても変えない
type OrderItem struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID          int64           `gorm:"not null;index" json:"order_id"`
	FoodID           int64           `gorm:"not null;index" json:"food_id"`
	FoodNameSnapshot string          `gorm:"type:varchar(100);not null" json:"food_name_snapshot"`
	Quantity         int64           `gorm:"not null" json:"quantity"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt        time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`

	Food *Food `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}
