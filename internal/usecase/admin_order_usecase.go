package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"foodapp/internal/domain/model"
	repo "foodapp/internal/repository"
)

type AdminOrderUsecase struct {
	tx     repo.TransactionManager
	clock  Clock
	events OrderEventPublisher
}

func NewAdminOrderUsecase(tx repo.TransactionManager, clock Clock, events OrderEventPublisher) *AdminOrderUsecase {
	if events == nil {
		events = NoopEventPublisher{}
	}
	return &AdminOrderUsecase{tx: tx, clock: clock, events: events}
}

type AdminUpdateOrderStatusInput struct {
	Status string
}

// 注文一覧（全ユーザー分）
func (u *AdminOrderUsecase) List(ctx context.Context, actor model.Actor, f repo.AdminOrderListFilter) (OrderListOutput, error) {
	if err := requireAdmin(actor); err != nil {
		return OrderListOutput{}, err
	}
	if err := checkPaging(f.Page, f.Limit); err != nil {
		return OrderListOutput{}, err
	}
	f.Status = strings.TrimSpace(f.Status)
	if f.Status != "" && !model.OrderStatus(f.Status).Valid() {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var out OrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().ListAdmin(ctx, f)
		if err != nil {
			return internalError(ctx, "list admin orders", err)
		}
		items, err := loadOrderOutputs(ctx, r, orders)
		if err != nil {
			return err
		}
		out = OrderListOutput{Items: items, Total: total, Page: f.Page, Limit: f.Limit}
		return nil
	})
	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

// ステータス更新。遷移の順序は制限しない（deliveredからnewに戻すのも可）
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, actor model.Actor, orderID int64, in AdminUpdateOrderStatusInput) (OrderOutput, error) {
	if err := requireAdmin(actor); err != nil {
		return OrderOutput{}, err
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := model.OrderStatus(strings.TrimSpace(in.Status))
	if !newStatus.Valid() {
		return OrderOutput{}, NewValidationError(map[string]string{
			"status": fmt.Sprintf("%q is not a valid choice.", in.Status),
		})
	}

	var (
		out          OrderOutput
		beforeStatus model.OrderStatus
	)

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return internalError(ctx, "find order", err)
		}
		beforeStatus = o.Status

		// すでに同じなら何もしない（200）
		if o.Status != newStatus {
			if err := r.Orders().UpdateStatus(ctx, orderID, newStatus); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return NewHTTPError(http.StatusNotFound, "not found")
				}
				return internalError(ctx, "update order status", err)
			}

			if err := r.AuditLogs().Create(ctx, model.AuditLog{
				ActorUserID:  actor.UserID,
				Action:       model.AuditActionUpdateOrderStatus,
				ResourceType: model.AuditResourceOrder,
				ResourceID:   orderID,
				BeforeJSON:   toJSON(map[string]string{"status": string(o.Status)}),
				AfterJSON:    toJSON(map[string]string{"status": string(newStatus)}),
				CreatedAt:    u.clock.Now(),
			}); err != nil {
				return internalError(ctx, "create audit log", err)
			}
			o.Status = newStatus
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

	if beforeStatus != newStatus {
		if err := u.events.OrderStatusChanged(ctx, OrderStatusChangedEvent{
			OrderID:   orderID,
			OldStatus: string(beforeStatus),
			NewStatus: string(newStatus),
			ChangedBy: actor.UserID,
			ChangedAt: u.clock.Now(),
		}); err != nil {
			slog.WarnContext(ctx, "publish order.status_changed failed",
				slog.Int64("order_id", orderID),
				slog.String("error", err.Error()),
			)
		}
	}

	return out, nil
}

// 明細ごと注文を消す
func (u *AdminOrderUsecase) Delete(ctx context.Context, actor model.Actor, orderID int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return internalError(ctx, "find order", err)
		}

		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return internalError(ctx, "delete order items", err)
		}
		if err := r.Orders().Delete(ctx, orderID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return internalError(ctx, "delete order", err)
		}

		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID:  actor.UserID,
			Action:       model.AuditActionDeleteOrder,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   orderID,
			BeforeJSON: toJSON(map[string]any{
				"user_id":     o.UserID,
				"status":      o.Status,
				"total_price": o.TotalPrice,
			}),
			CreatedAt: u.clock.Now(),
		}); err != nil {
			return internalError(ctx, "create audit log", err)
		}
		return nil
	})
}

// 管理者以外は403。未ログインは401
func requireAdmin(actor model.Actor) error {
	if !actor.Authenticated() {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if !actor.IsAdmin {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return nil
}

// 監査ログ用。失敗しない値だけ渡す
func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
