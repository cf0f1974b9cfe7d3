package usecase

import (
	"context"
	"time"

	"foodapp/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(userID int64, role model.Role, tokenVersion int, now time.Time) (token string, expiresAt time.Time, err error)
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type OrderCreatedEvent struct {
	OrderID    int64           `json:"order_id"`
	UserID     int64           `json:"user_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	PromoCode  string          `json:"promo_code,omitempty"`
	ItemCount  int             `json:"item_count"`
	CreatedAt  time.Time       `json:"created_at"`
}

type OrderStatusChangedEvent struct {
	OrderID   int64     `json:"order_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedBy int64     `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

// commit後に呼ぶ。失敗してもHTTPの結果は変えない
type OrderEventPublisher interface {
	OrderCreated(ctx context.Context, ev OrderCreatedEvent) error
	OrderStatusChanged(ctx context.Context, ev OrderStatusChangedEvent) error
}

// AMQP_URLが無いとき用
type NoopEventPublisher struct{}

func (NoopEventPublisher) OrderCreated(context.Context, OrderCreatedEvent) error { return nil }

func (NoopEventPublisher) OrderStatusChanged(context.Context, OrderStatusChangedEvent) error {
	return nil
}
