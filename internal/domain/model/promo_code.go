package model

import "time"

// 日付だけを扱うときのフォーマット
const DateLayout = "2006-01-02"

// 割引コード。管理者が作成/無効化し、注文側は読むだけ
type PromoCode struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code            string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	DiscountPercent int       `gorm:"not null" json:"discount_percent"`
	IsActive        bool      `gorm:"not null" json:"is_active"`
	ValidFrom       time.Time `gorm:"type:date;not null" json:"valid_from"`
	ValidTo         time.Time `gorm:"type:date;not null" json:"valid_to"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// 有効かつ today が [valid_from, valid_to] に入っているか（両端含む、日付単位）
func (p PromoCode) RedeemableOn(today time.Time) bool {
	if !p.IsActive {
		return false
	}
	d := civilDate(today)
	return civilDate(p.ValidFrom) <= d && d <= civilDate(p.ValidTo)
}

// 時刻は捨てて YYYYMMDD の整数にする
func civilDate(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
