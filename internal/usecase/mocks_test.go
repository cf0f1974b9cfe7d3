package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"foodapp/internal/domain/model"
	repo "foodapp/internal/repository"
	"foodapp/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	foods      repo.FoodRepository
	promoCodes repo.PromoCodeRepository
	auditLogs  repo.AuditLogRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *TxReposMock) Foods() repo.FoodRepository           { return r.foods }
func (r *TxReposMock) PromoCodes() repo.PromoCodeRepository { return r.promoCodes }
func (r *TxReposMock) AuditLogs() repo.AuditLogRepository   { return r.auditLogs }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderIDs(ctx context.Context, orderIDs []int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderIDs)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) DeleteByOrderID(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ExistsByFoodID(ctx context.Context, foodID int64) (bool, error) {
	args := m.Called(ctx, foodID)
	return args.Bool(0), args.Error(1)
}

type FoodRepoMock struct{ mock.Mock }

func (m *FoodRepoMock) List(ctx context.Context, q repo.FoodListQuery) ([]model.Food, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Food)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *FoodRepoMock) FindByID(ctx context.Context, id int64) (model.Food, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(model.Food)
	return f, args.Error(1)
}

func (m *FoodRepoMock) Create(ctx context.Context, f model.Food) (model.Food, error) {
	args := m.Called(ctx, f)
	created, _ := args.Get(0).(model.Food)
	return created, args.Error(1)
}

func (m *FoodRepoMock) Update(ctx context.Context, f model.Food) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *FoodRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type PromoCodeRepoMock struct{ mock.Mock }

func (m *PromoCodeRepoMock) FindByCode(ctx context.Context, code string) (model.PromoCode, error) {
	args := m.Called(ctx, code)
	p, _ := args.Get(0).(model.PromoCode)
	return p, args.Error(1)
}

func (m *PromoCodeRepoMock) FindByID(ctx context.Context, id int64) (model.PromoCode, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.PromoCode)
	return p, args.Error(1)
}

func (m *PromoCodeRepoMock) List(ctx context.Context) ([]model.PromoCode, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.PromoCode)
	return items, args.Error(1)
}

func (m *PromoCodeRepoMock) Create(ctx context.Context, p model.PromoCode) (model.PromoCode, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.PromoCode)
	return created, args.Error(1)
}

func (m *PromoCodeRepoMock) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PromoCodeRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditRepoMock) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	args := m.Called(ctx, filter)
	logs, _ := args.Get(0).([]model.AuditLog)
	return logs, args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) IncrementTokenVersion(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// =====================
// ports mocks
// =====================

type EventPublisherMock struct{ mock.Mock }

func (m *EventPublisherMock) OrderCreated(ctx context.Context, ev usecase.OrderCreatedEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *EventPublisherMock) OrderStatusChanged(ctx context.Context, ev usecase.OrderStatusChangedEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTxMock() (*TxManagerMock, *TxReposMock) {
	tx := new(TxManagerMock)
	repos := &TxReposMock{}
	tx.Repos = repos
	tx.On("WithinTx", mock.Anything).Return(nil)
	return tx, repos
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var (
	customer = model.Actor{UserID: 7}
	admin    = model.Actor{UserID: 1, IsAdmin: true}
)

// =====================
// Helper: error contains（HTTPErrorの実装詳細に依存しない）
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func assertStatus(t *testing.T, err error, want int) *usecase.HTTPError {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "want *HTTPError, got %v", err) {
		assert.Equal(t, want, he.Status)
	}
	return he
}
