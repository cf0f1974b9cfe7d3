package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Foods() FoodRepository
	PromoCodes() PromoCodeRepository
	AuditLogs() AuditLogRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがerrorを返したら全部rollbackされる
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
