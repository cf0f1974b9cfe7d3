package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"foodapp/internal/domain/model"
	repo "foodapp/internal/repository"

	"github.com/shopspring/decimal"
)

// 注文入力のチェック
type OrderValidator interface {
	ValidateCreateOrder(in CreateOrderInput) error
}

type OrderUsecase struct {
	tx        repo.TransactionManager
	validator OrderValidator
	clock     Clock
	events    OrderEventPublisher
}

func NewOrderUsecase(tx repo.TransactionManager, v OrderValidator, clock Clock, events OrderEventPublisher) *OrderUsecase {
	if events == nil {
		events = NoopEventPublisher{}
	}
	return &OrderUsecase{tx: tx, validator: v, clock: clock, events: events}
}

type OrderLineInput struct {
	FoodID   int64
	Quantity int64
}

type CreateOrderInput struct {
	Address string
	// nilは「itemsが無い」。空スライスは許可（合計0の注文になる）
	Items []OrderLineInput
	// nilなら割引なし
	PromoCode *string
}

type OrderItemOutput struct {
	FoodID   int64           `json:"food_id"`
	FoodName string          `json:"food_name"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderOutput struct {
	ID         int64             `json:"id"`
	UserID     int64             `json:"user_id"`
	Address    string            `json:"address"`
	Status     string            `json:"status"`
	PromoCode  *string           `json:"promo_code"`
	TotalPrice decimal.Decimal   `json:"total_price"`
	CreatedAt  time.Time         `json:"created_at"`
	Items      []OrderItemOutput `json:"items"`
}

type OrderListOutput struct {
	Items []OrderOutput `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// 注文作成。価格はすべてDBのカタログから引き直す（クライアントの価格は受け取らない）
// 商品の取得から明細の保存まで1つのトランザクションで、途中で失敗したら何も残らない
func (u *OrderUsecase) CreateOrder(ctx context.Context, actor model.Actor, in CreateOrderInput) (OrderOutput, error) {
	if !actor.Authenticated() {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.validator.ValidateCreateOrder(in); err != nil {
		return OrderOutput{}, err
	}

	address := strings.TrimSpace(in.Address)
	code := ""
	if in.PromoCode != nil {
		code = strings.TrimSpace(*in.PromoCode)
	}
	today := u.clock.Now()

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderItems := make([]model.OrderItem, 0, len(in.Items))
		subtotal := decimal.Zero

		for _, line := range in.Items {
			f, err := r.Foods().FindByID(ctx, line.FoodID)
			if errors.Is(err, repo.ErrNotFound) {
				return newFoodNotFoundError(line.FoodID)
			}
			if err != nil {
				return internalError(ctx, "find food", err)
			}

			//スナップショット
			linePrice := LinePrice(f.Price, line.Quantity)
			orderItems = append(orderItems, model.OrderItem{
				FoodID:           f.ID,
				FoodNameSnapshot: f.Name,
				Quantity:         line.Quantity,
				Price:            linePrice,
			})
			subtotal = subtotal.Add(linePrice)
		}

		total := subtotal.RoundBank(moneyPlaces)
		var promo *model.PromoCode
		if code != "" {
			p, err := r.PromoCodes().FindByCode(ctx, code)
			if errors.Is(err, repo.ErrNotFound) {
				return newInvalidPromoCodeError()
			}
			if err != nil {
				return internalError(ctx, "find promo code", err)
			}
			if !p.RedeemableOn(today) {
				return newInvalidPromoCodeError()
			}
			total = ApplyDiscount(subtotal, p.DiscountPercent)
			promo = &p
		}

		order := model.Order{
			UserID:     actor.UserID,
			Address:    address,
			TotalPrice: total,
			Status:     model.OrderStatusNew,
		}
		if promo != nil {
			order.PromoCodeID = &promo.ID
		}

		created, err := r.Orders().Create(ctx, order)
		if err != nil {
			return internalError(ctx, "create order", err)
		}
		if len(orderItems) > 0 {
			if err := r.OrderItems().CreateBulk(ctx, created.ID, orderItems); err != nil {
				return internalError(ctx, "create order items", err)
			}
		}

		out = toOrderOutput(created, orderItems, promo)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}

	ev := OrderCreatedEvent{
		OrderID:    out.ID,
		UserID:     out.UserID,
		TotalPrice: out.TotalPrice,
		ItemCount:  len(out.Items),
		CreatedAt:  out.CreatedAt,
	}
	if out.PromoCode != nil {
		ev.PromoCode = *out.PromoCode
	}
	if err := u.events.OrderCreated(ctx, ev); err != nil {
		slog.WarnContext(ctx, "publish order.created failed",
			slog.Int64("order_id", out.ID),
			slog.String("error", err.Error()),
		)
	}

	return out, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, actor model.Actor, page int, limit int) (OrderListOutput, error) {
	if !actor.Authenticated() {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := checkPaging(page, limit); err != nil {
		return OrderListOutput{}, err
	}

	var out OrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().ListByUserID(ctx, actor.UserID, page, limit)
		if err != nil {
			return internalError(ctx, "list my orders", err)
		}
		items, err := loadOrderOutputs(ctx, r, orders)
		if err != nil {
			return err
		}
		out = OrderListOutput{Items: items, Total: total, Page: page, Limit: limit}
		return nil
	})
	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, actor model.Actor, orderID int64) (OrderOutput, error) {
	if !actor.Authenticated() {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return internalError(ctx, "find order", err)
		}
		if o.UserID != actor.UserID {
			//他人の注文は「存在しない扱い」にする
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		outs, err := loadOrderOutputs(ctx, r, []model.Order{o})
		if err != nil {
			return err
		}
		out = outs[0]
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 明細と割引コードを付けて返す。明細は1クエリで、同じコードは1回だけ引く
func loadOrderOutputs(ctx context.Context, r repo.TxRepos, orders []model.Order) ([]OrderOutput, error) {
	outs := make([]OrderOutput, 0, len(orders))
	if len(orders) == 0 {
		return outs, nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	allItems, err := r.OrderItems().ListByOrderIDs(ctx, ids)
	if err != nil {
		return nil, internalError(ctx, "list order items", err)
	}
	itemsByOrder := make(map[int64][]model.OrderItem, len(orders))
	for _, it := range allItems {
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], it)
	}

	promos := map[int64]*model.PromoCode{}
	for _, o := range orders {
		items := itemsByOrder[o.ID]

		var promo *model.PromoCode
		if o.PromoCodeID != nil {
			cached, ok := promos[*o.PromoCodeID]
			if !ok {
				p, err := r.PromoCodes().FindByID(ctx, *o.PromoCodeID)
				switch {
				case errors.Is(err, repo.ErrNotFound):
					cached = nil
				case err != nil:
					return nil, internalError(ctx, "find promo code", err)
				default:
					cached = &p
				}
				promos[*o.PromoCodeID] = cached
			}
			promo = cached
		}

		outs = append(outs, toOrderOutput(o, items, promo))
	}
	return outs, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem, promo *model.PromoCode) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			FoodID:   it.FoodID,
			FoodName: it.FoodNameSnapshot,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	out := OrderOutput{
		ID:         o.ID,
		UserID:     o.UserID,
		Address:    o.Address,
		Status:     string(o.Status),
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
		Items:      outItems,
	}
	if promo != nil {
		code := promo.Code
		out.PromoCode = &code
	}
	return out
}

// page/limitの最低限チェック
func checkPaging(page int, limit int) error {
	if page < 1 {
		return NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	return nil
}
