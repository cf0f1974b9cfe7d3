package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"foodapp/internal/config"
	"foodapp/internal/domain/model"
	"foodapp/internal/handler"
	"foodapp/internal/infra/db/dbtest"
	infraRepo "foodapp/internal/infra/repository"
	"foodapp/internal/infra/token"
	"foodapp/internal/server"
	"foodapp/internal/usecase"
	"foodapp/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@test.com"
	adminPassword = "password123"
)

type nowClock struct{}

func (nowClock) Now() time.Time { return time.Now() }

// 送られたイベントを覚えておく
type recordingPublisher struct {
	mu      sync.Mutex
	created []usecase.OrderCreatedEvent
	changed []usecase.OrderStatusChangedEvent
}

func (p *recordingPublisher) OrderCreated(_ context.Context, ev usecase.OrderCreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, ev)
	return nil
}

func (p *recordingPublisher) OrderStatusChanged(_ context.Context, ev usecase.OrderStatusChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changed = append(p.changed, ev)
	return nil
}

type testApp struct {
	e      *echo.Echo
	db     *gorm.DB
	events *recordingPublisher
}

// cmd/apiのserveと同じ組み立てをSQLiteでやる
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	gormDB := dbtest.Open(t)
	cfg := config.Config{JWTSecret: "test-secret", AccessTokenTTL: 15 * time.Minute}

	userRepo := infraRepo.NewUserGormRepository(gormDB)
	foodRepo := infraRepo.NewFoodGormRepository(gormDB)
	promoRepo := infraRepo.NewPromoCodeGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	clock := nowClock{}
	hasher := token.NewBcryptPasswordHasher(bcrypt.MinCost)
	issuer := token.NewJWTIssuer(cfg.JWTSecret, cfg.AccessTokenTTL)
	events := &recordingPublisher{}

	authUC := usecase.NewAuthUsecase(userRepo, auditRepo, hasher, hasher, issuer, clock, validator.NewAuthValidator(userRepo))
	foodUC := usecase.NewFoodUsecase(foodRepo, txm, validator.NewFoodValidator(), clock)
	promoUC := usecase.NewPromoCodeUsecase(promoRepo, txm, validator.NewPromoCodeValidator(), clock)
	orderUC := usecase.NewOrderUsecase(txm, validator.NewOrderValidator(), clock, events)
	adminOrderUC := usecase.NewAdminOrderUsecase(txm, clock, events)
	auditUC := usecase.NewAuditLogUsecase(auditRepo)

	e := server.New(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	server.RegisterRoutes(e, cfg, userRepo, server.Handlers{
		Auth:       handler.NewAuthHandler(authUC),
		Food:       handler.NewFoodHandler(foodUC),
		AdminFood:  handler.NewAdminFoodHandler(foodUC),
		Order:      handler.NewOrderHandler(orderUC),
		AdminOrder: handler.NewAdminOrderHandler(adminOrderUC),
		AdminPromo: handler.NewAdminPromoCodeHandler(promoUC),
		AdminUser:  handler.NewAdminUserHandler(authUC, auditUC),
	})

	// 管理者はAPIから作れないのでDBに直接入れる
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, gormDB.Create(&model.User{
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsActive:     true,
	}).Error)

	return &testApp{e: e, db: gormDB, events: events}
}

func (a *testApp) doJSON(t *testing.T, method string, path string, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body=%s", rec.Body.String())
}

func mustDecode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body=%s", rec.Body.String())
	return v
}

func (a *testApp) login(t *testing.T, email string, password string) string {
	t.Helper()

	rec := a.doJSON(t, http.MethodPost, "/users/login", "", map[string]string{"email": email, "password": password})
	requireStatus(t, rec, http.StatusOK)

	res := mustDecode[usecase.AuthLoginResponse](t, rec)
	require.NotEmpty(t, res.Token.AccessToken)
	return res.Token.AccessToken
}

func (a *testApp) adminLogin(t *testing.T) string {
	t.Helper()
	return a.login(t, adminEmail, adminPassword)
}

// 登録してログインまで
func (a *testApp) registerCustomer(t *testing.T, email string) string {
	t.Helper()

	rec := a.doJSON(t, http.MethodPost, "/users/register", "", map[string]string{"email": email, "password": "password123"})
	requireStatus(t, rec, http.StatusCreated)
	return a.login(t, email, "password123")
}

func (a *testApp) createFood(t *testing.T, adminToken string, name string, price string, category string, available bool) model.Food {
	t.Helper()

	rec := a.doJSON(t, http.MethodPost, "/admin/foods", adminToken, map[string]any{
		"name":         name,
		"price":        price,
		"category":     category,
		"is_available": available,
	})
	requireStatus(t, rec, http.StatusCreated)
	return mustDecode[model.Food](t, rec)
}

func (a *testApp) countOrders(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, a.db.Model(&model.Order{}).Count(&n).Error)
	return n
}
