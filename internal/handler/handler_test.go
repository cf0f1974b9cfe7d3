package handler_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"foodapp/internal/domain/model"
	"foodapp/internal/handler"
	"foodapp/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toStr(v int64) string {
	return strconv.FormatInt(v, 10)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "got=%s want=%s", got, want)
}

// 今日を含む有効期間の割引コード
func (a *testApp) createPromo(t *testing.T, adminToken string, code string, percent int) usecase.PromoCodeOutput {
	t.Helper()

	today := time.Now()
	rec := a.doJSON(t, http.MethodPost, "/admin/promo-codes", adminToken, map[string]any{
		"code":             code,
		"discount_percent": percent,
		"valid_from":       today.AddDate(0, 0, -1).Format(model.DateLayout),
		"valid_to":         today.AddDate(0, 0, 1).Format(model.DateLayout),
	})
	requireStatus(t, rec, http.StatusCreated)
	return mustDecode[usecase.PromoCodeOutput](t, rec)
}

// =====================
// Auth
// =====================

func TestAuth_RegisterLoginMe(t *testing.T) {
	app := newTestApp(t)

	tok := app.registerCustomer(t, "User@Test.com")

	rec := app.doJSON(t, http.MethodGet, "/users/me", tok, nil)
	requireStatus(t, rec, http.StatusOK)
	me := mustDecode[usecase.UserDTO](t, rec)
	assert.Equal(t, "user@test.com", me.Email)
	assert.Equal(t, "user", me.Role)

	// 同じemailは409
	rec = app.doJSON(t, http.MethodPost, "/users/register", "", map[string]string{"email": "user@test.com", "password": "password123"})
	requireStatus(t, rec, http.StatusConflict)
}

func TestAuth_RegisterValidationFields(t *testing.T) {
	app := newTestApp(t)

	rec := app.doJSON(t, http.MethodPost, "/users/register", "", map[string]string{"email": "nope", "password": "short"})
	requireStatus(t, rec, http.StatusBadRequest)

	res := mustDecode[handler.ErrorResponse](t, rec)
	assert.Equal(t, "validation error", res.Error)
	assert.Contains(t, res.Fields, "email")
	assert.Contains(t, res.Fields, "password")
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	rec := app.doJSON(t, http.MethodPost, "/users/login", "", map[string]string{"email": adminEmail, "password": "wrong-password"})
	requireStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, "invalid credentials", mustDecode[handler.ErrorResponse](t, rec).Error)
}

// 強制ログアウト後は古いトークンが使えない
func TestAdmin_ForceLogoutRevokesToken(t *testing.T) {
	app := newTestApp(t)
	adminTok := app.adminLogin(t)
	userTok := app.registerCustomer(t, "victim@test.com")

	rec := app.doJSON(t, http.MethodGet, "/users/me", userTok, nil)
	requireStatus(t, rec, http.StatusOK)
	me := mustDecode[usecase.UserDTO](t, rec)

	rec = app.doJSON(t, http.MethodPost, "/admin/users/"+toStr(me.ID)+"/force-logout", adminTok, nil)
	requireStatus(t, rec, http.StatusOK)
	res := mustDecode[usecase.ForceLogoutResponse](t, rec)
	assert.Equal(t, me.ID, res.UserID)
	assert.Equal(t, me.TokenVersion+1, res.NewTokenVersion)

	rec = app.doJSON(t, http.MethodGet, "/users/me", userTok, nil)
	requireStatus(t, rec, http.StatusUnauthorized)

	// ログインし直せば使える
	newTok := app.login(t, "victim@test.com", "password123")
	rec = app.doJSON(t, http.MethodGet, "/users/me", newTok, nil)
	requireStatus(t, rec, http.StatusOK)

	// 監査ログに残る
	rec = app.doJSON(t, http.MethodGet, "/admin/audit-logs?action=FORCE_LOGOUT", adminTok, nil)
	requireStatus(t, rec, http.StatusOK)
	logs := mustDecode[[]model.AuditLog](t, rec)
	require.Len(t, logs, 1)
	assert.Equal(t, me.ID, logs[0].ResourceID)
}

// =====================
// Foods
// =====================

func TestFoods_AvailabilityVisibility(t *testing.T) {
	app := newTestApp(t)
	adminTok := app.adminLogin(t)

	app.createFood(t, adminTok, "Burger", "12.50", "fastfood", true)
	hidden := app.createFood(t, adminTok, "Secret", "5.00", "dessert", false)

	// 未ログインは販売中だけ
	rec := app.doJSON(t, http.MethodGet, "/foods", "", nil)
	requireStatus(t, rec, http.StatusOK)
	list := mustDecode[usecase.FoodListOutput](t, rec)
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, 20, list.Limit)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Burger", list.Items[0].Name)
	assertMoney(t, "12.50", list.Items[0].Price)

	rec = app.doJSON(t, http.MethodGet, "/foods/"+toStr(hidden.ID), "", nil)
	requireStatus(t, rec, http.StatusNotFound)

	// 管理者は全部見える
	rec = app.doJSON(t, http.MethodGet, "/foods", adminTok, nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, int64(2), mustDecode[usecase.FoodListOutput](t, rec).Total)

	rec = app.doJSON(t, http.MethodGet, "/foods?category=dessert", adminTok, nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, int64(1), mustDecode[usecase.FoodListOutput](t, rec).Total)

	rec = app.doJSON(t, http.MethodGet, "/foods?category=pizza", "", nil)
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestAdminFoods_RequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	userTok := app.registerCustomer(t, "user@test.com")

	rec := app.doJSON(t, http.MethodPost, "/admin/foods", userTok, map[string]any{"name": "x", "price": "1.00", "category": "drink"})
	requireStatus(t, rec, http.StatusForbidden)

	rec = app.doJSON(t, http.MethodGet, "/admin/foods", "", nil)
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestAdminFoods_CreateValidation(t *testing.T) {
	app := newTestApp(t)
	adminTok := app.adminLogin(t)

	rec := app.doJSON(t, http.MethodPost, "/admin/foods", adminTok, map[string]any{"name": "", "category": "pizza"})
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, mustDecode[handler.ErrorResponse](t, rec).Fields, "price")

	rec = app.doJSON(t, http.MethodPost, "/admin/foods", adminTok, map[string]any{"name": "", "price": 1.005, "category": "pizza"})
	requireStatus(t, rec, http.StatusBadRequest)
	fields := mustDecode[handler.ErrorResponse](t, rec).Fields
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "category")
}

func TestAdminFoods_UpdateAndDelete(t *testing.T) {
	app := newTestApp(t)
	adminTok := app.adminLogin(t)
	food := app.createFood(t, adminTok, "Cola", "3.00", "drink", true)

	// 数値のpriceも受け付ける
	rec := app.doJSON(t, http.MethodPut, "/admin/foods/"+toStr(food.ID), adminTok, map[string]any{
		"name": "Cola Zero", "price": 3.5, "category": "drink", "is_available": false,
	})
	requireStatus(t, rec, http.StatusOK)
	updated := mustDecode[model.Food](t, rec)
	assert.Equal(t, "Cola Zero", updated.Name)
	assertMoney(t, "3.50", updated.Price)
	assert.False(t, updated.IsAvailable)

	rec = app.doJSON(t, http.MethodDelete, "/admin/foods/"+toStr(food.ID), adminTok, nil)
	requireStatus(t, rec, http.StatusNoContent)

	rec = app.doJSON(t, http.MethodGet, "/admin/foods/"+toStr(food.ID), adminTok, nil)
	requireStatus(t, rec, http.StatusNotFound)
}

func TestAdminFoods_DeleteReferencedConflict(t *testing.T) {
	app := newTestApp(t)
	adminTok := app.adminLogin(t)
	userTok := app.registerCustomer(t, "user@test.com")
	food := app.createFood(t, adminTok, "Burger", "12.50", "fastfood", true)

	rec := app.doJSON(t, http.MethodPost, "/orders/create", userTok, map[string]any{
		"address": "Tashkent",
		"items":   []map[string]any{{"food_id": food.ID, "quantity": 1}},
	})
	requireStatus(t, rec, http.StatusCreated)

	rec = app.doJSON(t, http.MethodDelete, "/admin/foods/"+toStr(food.ID), adminTok, nil)
	requireStatus(t, rec, http.StatusConflict)
}

// =====================
// Orders
// =====================

func TestOrders_CreateWithoutPromo(t *testing.T) {
	app := newTestApp(t)
	adminTok := app.adminLogin(t)
	userTok := app.registerCustomer(t, "user@test.com")
	burger := app.createFood(t, adminTok, "Burger", "12.50", "fastfood", true)
	cola := app.createFood(t, adminTok, "Cola", "3.00", "drink", true)

	rec := app.doJSON(t, http.MethodPost, "/orders/create", userTok, map[string]any{
		"address": "Tashkent, Amir Temur 1",
		"items": []map[string]any{
			{"food_id": burger.ID, "quantity": 2},
			{"food_id": cola.ID, "quantity": 1},
		},
	})
	requireStatus(t, rec, http.StatusCreated)

	res := mustDecode[handler.OrderCreateResponse](t, rec)
	assert.Equal(t, "Order created", res.Message)
	assert.Equal(t, "28.00", res.TotalPrice)
	assert.Greater(t, res.OrderID, int64(0))

	rec = app.doJSON(t, http.MethodGet, "/orders/"+toStr(res.OrderID), userTok, nil)
	requireStatus(t, rec, http.StatusOK)
	detail := mustDecode[usecase.OrderOutput](t, rec)
	assert.Equal(t, "new", detail.Status)
	assert.Nil(t, detail.PromoCode)
	assertMoney(t, "28.00", detail.TotalPrice)
	require.Len(t, detail.Items, 2)
	assert.Equal(t, "Burger", detail.Items[0].FoodName)
	assertMoney(t, "25.00", detail.Items[0].Price)

	require.Len(t, app.events.created, 1)
	assert.Equal(t, res.OrderID, app.events.created[0].OrderID)
}

func TestOrders_CreateWithPromo(t *testing.T) {
	app := newTestApp(t)
	adminTok := app.adminLogin(t)
	userTok := app.registerCustomer(t, "user@test.com")
	burger := app.createFood(t, adminTok, "Burger", "12.50", "fastfood", true)
	app.createPromo(t, adminTok, "SAVE10", 10)

	rec := app.doJSON(t, http.MethodPost, "/orders/create", userTok, map[string]any{
		"address":    "Tashkent",
		"items":      []map[string]any{{"food_id": burger.ID, "quantity": 2}},
		"promo_code": "SAVE10",
	})
	requireStatus(t, rec, http.StatusCreated)
	res := mustDecode[handler.OrderCreateResponse](t, rec)
	assert.Equal(t, "22.50", res.TotalPrice)

	rec = app.doJSON(t, http.MethodGet, "/orders/"+toStr(res.OrderID), userTok, nil)
	requireStatus(t, rec, http.StatusOK)
	detail := mustDecode[usecase.OrderOutput](t, rec)
	require.NotNil(t, detail.PromoCode)
	assert.Equal(t, "SAVE10", *detail.PromoCode)
}

func TestOrders_InvalidPromoAbortsOrder(t *testing.T) {
	app := newTestApp(t)
	adminTok := app.adminLogin(t)
	userTok := app.registerCustomer(t, "user@test.com")
	burger := app.createFood(t, adminTok, "Burger", "12.50", "fastfood", true)
	promo := app.createPromo(t, adminTok, "OFF", 50)

	rec := app.doJSON(t, http.MethodPatch, "/admin/promo-codes/"+toStr(promo.ID)+"/deactivate", adminTok, nil)
	requireStatus(t, rec, http.StatusOK)
	assert.False(t, mustDecode[usecase.PromoCodeOutput](t, rec).IsActive)

	for _, code := range []string{"OFF", "NOPE"} {
		rec = app.doJSON(t, http.MethodPost, "/orders/create", userTok, map[string]any{
			"address":    "Tashkent",
			"items":      []map[string]any{{"food_id": burger.ID, "quantity": 1}},
			"promo_code": code,
		})
		requireStatus(t, rec, http.StatusBadRequest)
		res := mustDecode[handler.ErrorResponse](t, rec)
		assert.Equal(t, "Invalid or expired promo code", res.Fields["promo_code"])
	}

	assert.Equal(t, int64(0), app.countOrders(t))
	assert.Empty(t, app.events.created)
}

func TestOrders_UnknownFoodNothingPersisted(t *testing.T) {
	app := newTestApp(t)
	adminTok := app.adminLogin(t)
	userTok := app.registerCustomer(t, "user@test.com")
	burger := app.createFood(t, adminTok, "Burger", "12.50", "fastfood", true)

	rec := app.doJSON(t, http.MethodPost, "/orders/create", userTok, map[string]any{
		"address": "Tashkent",
		"items": []map[string]any{
			{"food_id": burger.ID, "quantity": 1},
			{"food_id": 9999, "quantity": 1},
		},
	})
	requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, int64(0), app.countOrders(t))
}

func TestOrders_NonPositiveFoodIDIsNotFound(t *testing.T) {
	app := newTestApp(t)
	userTok := app.registerCustomer(t, "user@test.com")

	for _, id := range []int64{0, -3} {
		rec := app.doJSON(t, http.MethodPost, "/orders/create", userTok, map[string]any{
			"address": "Tashkent",
			"items":   []map[string]any{{"food_id": id, "quantity": 1}},
		})
		requireStatus(t, rec, http.StatusNotFound)
		res := mustDecode[handler.ErrorResponse](t, rec)
		assert.Empty(t, res.Fields)
	}
	assert.Equal(t, int64(0), app.countOrders(t))
	assert.Empty(t, app.events.created)
}

func TestOrders_ValidationFields(t *testing.T) {
	app := newTestApp(t)
	userTok := app.registerCustomer(t, "user@test.com")

	rec := app.doJSON(t, http.MethodPost, "/orders/create", userTok, map[string]any{
		"address": "",
		"items":   []map[string]any{{"food_id": 1, "quantity": 0}},
	})
	requireStatus(t, rec, http.StatusBadRequest)

	res := mustDecode[handler.ErrorResponse](t, rec)
	assert.Equal(t, "validation error", res.Error)
	assert.Contains(t, res.Fields, "address")
	assert.Contains(t, res.Fields, "items[0].quantity")

	rec = app.doJSON(t, http.MethodPost, "/orders/create", userTok, map[string]any{"address": "Tashkent"})
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, mustDecode[handler.ErrorResponse](t, rec).Fields, "items")
}

func TestOrders_EmptyItemsZeroTotal(t *testing.T) {
	app := newTestApp(t)
	userTok := app.registerCustomer(t, "user@test.com")

	rec := app.doJSON(t, http.MethodPost, "/orders/create", userTok, map[string]any{
		"address": "Tashkent",
		"items":   []map[string]any{},
	})
	requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, "0.00", mustDecode[handler.OrderCreateResponse](t, rec).TotalPrice)
}

func TestOrders_RequireLogin(t *testing.T) {
	app := newTestApp(t)

	rec := app.doJSON(t, http.MethodPost, "/orders/create", "", map[string]any{"address": "x", "items": []any{}})
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestOrders_OwnershipAndList(t *testing.T) {
	app := newTestApp(t)
	adminTok := app.adminLogin(t)
	alice := app.registerCustomer(t, "alice@test.com")
	bob := app.registerCustomer(t, "bob@test.com")
	burger := app.createFood(t, adminTok, "Burger", "12.50", "fastfood", true)

	rec := app.doJSON(t, http.MethodPost, "/orders/create", alice, map[string]any{
		"address": "Alice st",
		"items":   []map[string]any{{"food_id": burger.ID, "quantity": 1}},
	})
	requireStatus(t, rec, http.StatusCreated)
	orderID := mustDecode[handler.OrderCreateResponse](t, rec).OrderID

	// 他人の注文は存在しない扱い
	rec = app.doJSON(t, http.MethodGet, "/orders/"+toStr(orderID), bob, nil)
	requireStatus(t, rec, http.StatusNotFound)

	rec = app.doJSON(t, http.MethodGet, "/orders/my", bob, nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, int64(0), mustDecode[usecase.OrderListOutput](t, rec).Total)

	rec = app.doJSON(t, http.MethodGet, "/orders/my", alice, nil)
	requireStatus(t, rec, http.StatusOK)
	mine := mustDecode[usecase.OrderListOutput](t, rec)
	assert.Equal(t, int64(1), mine.Total)
	require.Len(t, mine.Items, 1)
	assert.Equal(t, orderID, mine.Items[0].ID)
}

// カタログを変えても既存の注文は変わらない
func TestOrders_SnapshotSurvivesFoodUpdate(t *testing.T) {
	app := newTestApp(t)
	adminTok := app.adminLogin(t)
	userTok := app.registerCustomer(t, "user@test.com")
	burger := app.createFood(t, adminTok, "Burger", "12.50", "fastfood", true)

	rec := app.doJSON(t, http.MethodPost, "/orders/create", userTok, map[string]any{
		"address": "Tashkent",
		"items":   []map[string]any{{"food_id": burger.ID, "quantity": 2}},
	})
	requireStatus(t, rec, http.StatusCreated)
	orderID := mustDecode[handler.OrderCreateResponse](t, rec).OrderID

	rec = app.doJSON(t, http.MethodPut, "/admin/foods/"+toStr(burger.ID), adminTok, map[string]any{
		"name": "Burger Deluxe", "price": "20.00", "category": "fastfood",
	})
	requireStatus(t, rec, http.StatusOK)

	rec = app.doJSON(t, http.MethodGet, "/orders/"+toStr(orderID), userTok, nil)
	requireStatus(t, rec, http.StatusOK)
	detail := mustDecode[usecase.OrderOutput](t, rec)
	assertMoney(t, "25.00", detail.TotalPrice)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Burger", detail.Items[0].FoodName)
	assertMoney(t, "25.00", detail.Items[0].Price)
}

// =====================
// Admin orders
// =====================

func TestAdminOrders_StatusUpdateAuditAndDelete(t *testing.T) {
	app := newTestApp(t)
	adminTok := app.adminLogin(t)
	userTok := app.registerCustomer(t, "user@test.com")
	burger := app.createFood(t, adminTok, "Burger", "12.50", "fastfood", true)

	rec := app.doJSON(t, http.MethodPost, "/orders/create", userTok, map[string]any{
		"address": "Tashkent",
		"items":   []map[string]any{{"food_id": burger.ID, "quantity": 1}},
	})
	requireStatus(t, rec, http.StatusCreated)
	orderID := mustDecode[handler.OrderCreateResponse](t, rec).OrderID

	// 顧客は管理APIを使えない
	rec = app.doJSON(t, http.MethodPatch, "/orders/admin/orders/"+toStr(orderID)+"/status", userTok, map[string]string{"status": "delivered"})
	requireStatus(t, rec, http.StatusForbidden)

	rec = app.doJSON(t, http.MethodPatch, "/orders/admin/orders/"+toStr(orderID)+"/status", adminTok, map[string]string{"status": "cooking"})
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, mustDecode[handler.ErrorResponse](t, rec).Fields, "status")

	rec = app.doJSON(t, http.MethodPatch, "/orders/admin/orders/"+toStr(orderID)+"/status", adminTok, map[string]string{"status": "delivered"})
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "Order status updated", mustDecode[handler.SuccessResponse](t, rec).Message)

	// 同じステータスは監査ログもイベントも増えない
	rec = app.doJSON(t, http.MethodPatch, "/orders/admin/orders/"+toStr(orderID)+"/status", adminTok, map[string]string{"status": "delivered"})
	requireStatus(t, rec, http.StatusOK)

	require.Len(t, app.events.changed, 1)
	assert.Equal(t, "new", app.events.changed[0].OldStatus)
	assert.Equal(t, "delivered", app.events.changed[0].NewStatus)

	rec = app.doJSON(t, http.MethodGet, "/admin/audit-logs?action=UPDATE_ORDER_STATUS&resource_id="+toStr(orderID), adminTok, nil)
	requireStatus(t, rec, http.StatusOK)
	logs := mustDecode[[]model.AuditLog](t, rec)
	require.Len(t, logs, 1)
	assert.JSONEq(t, `{"status":"new"}`, logs[0].BeforeJSON)
	assert.JSONEq(t, `{"status":"delivered"}`, logs[0].AfterJSON)

	rec = app.doJSON(t, http.MethodGet, "/orders/admin/orders?status=delivered", adminTok, nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, int64(1), mustDecode[usecase.OrderListOutput](t, rec).Total)

	rec = app.doJSON(t, http.MethodDelete, "/orders/admin/orders/"+toStr(orderID), adminTok, nil)
	requireStatus(t, rec, http.StatusNoContent)
	assert.Equal(t, int64(0), app.countOrders(t))

	rec = app.doJSON(t, http.MethodGet, "/orders/"+toStr(orderID), userTok, nil)
	requireStatus(t, rec, http.StatusNotFound)
}

// =====================
// Admin promo codes
// =====================

func TestAdminPromoCodes_DuplicateAndDelete(t *testing.T) {
	app := newTestApp(t)
	adminTok := app.adminLogin(t)
	userTok := app.registerCustomer(t, "user@test.com")
	burger := app.createFood(t, adminTok, "Burger", "10.00", "fastfood", true)
	promo := app.createPromo(t, adminTok, "HALF", 50)

	today := time.Now().Format(model.DateLayout)
	rec := app.doJSON(t, http.MethodPost, "/admin/promo-codes", adminTok, map[string]any{
		"code": "HALF", "discount_percent": 10, "valid_from": today, "valid_to": today,
	})
	requireStatus(t, rec, http.StatusConflict)

	rec = app.doJSON(t, http.MethodPost, "/admin/promo-codes", adminTok, map[string]any{
		"code": "BAD", "discount_percent": 10, "valid_from": today, "valid_to": "2000-01-01",
	})
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, mustDecode[handler.ErrorResponse](t, rec).Fields, "valid_to")

	rec = app.doJSON(t, http.MethodPost, "/orders/create", userTok, map[string]any{
		"address":    "Tashkent",
		"items":      []map[string]any{{"food_id": burger.ID, "quantity": 1}},
		"promo_code": "HALF",
	})
	requireStatus(t, rec, http.StatusCreated)
	res := mustDecode[handler.OrderCreateResponse](t, rec)
	assert.Equal(t, "5.00", res.TotalPrice)

	rec = app.doJSON(t, http.MethodDelete, "/admin/promo-codes/"+toStr(promo.ID), adminTok, nil)
	requireStatus(t, rec, http.StatusNoContent)

	// 注文は残り、割引コードはnullになる。合計は変わらない
	rec = app.doJSON(t, http.MethodGet, "/orders/"+toStr(res.OrderID), userTok, nil)
	requireStatus(t, rec, http.StatusOK)
	detail := mustDecode[usecase.OrderOutput](t, rec)
	assert.Nil(t, detail.PromoCode)
	assertMoney(t, "5.00", detail.TotalPrice)

	rec = app.doJSON(t, http.MethodGet, "/admin/promo-codes", adminTok, nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Empty(t, mustDecode[[]usecase.PromoCodeOutput](t, rec))
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)

	rec := app.doJSON(t, http.MethodGet, "/healthz", "", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
