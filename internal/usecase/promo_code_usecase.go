package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"foodapp/internal/domain/model"
	repo "foodapp/internal/repository"
)

// 割引コード入力のチェック
type PromoCodeValidator interface {
	ValidatePromoCode(in PromoCodeInput) error
}

type PromoCodeUsecase struct {
	promos    repo.PromoCodeRepository
	tx        repo.TransactionManager
	validator PromoCodeValidator
	clock     Clock
}

func NewPromoCodeUsecase(promos repo.PromoCodeRepository, tx repo.TransactionManager, v PromoCodeValidator, clock Clock) *PromoCodeUsecase {
	return &PromoCodeUsecase{promos: promos, tx: tx, validator: v, clock: clock}
}

type PromoCodeInput struct {
	Code            string
	DiscountPercent int
	// nilならtrue
	IsActive *bool
	// YYYY-MM-DD
	ValidFrom string
	ValidTo   string
}

type PromoCodeOutput struct {
	ID              int64     `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent int       `json:"discount_percent"`
	IsActive        bool      `json:"is_active"`
	ValidFrom       string    `json:"valid_from"`
	ValidTo         string    `json:"valid_to"`
	CreatedAt       time.Time `json:"created_at"`
}

func (u *PromoCodeUsecase) List(ctx context.Context, actor model.Actor) ([]PromoCodeOutput, error) {
	if err := requireAdmin(actor); err != nil {
		return []PromoCodeOutput{}, err
	}

	promos, err := u.promos.List(ctx)
	if err != nil {
		return []PromoCodeOutput{}, internalError(ctx, "list promo codes", err)
	}

	outs := make([]PromoCodeOutput, 0, len(promos))
	for _, p := range promos {
		outs = append(outs, toPromoCodeOutput(p))
	}
	return outs, nil
}

func (u *PromoCodeUsecase) Create(ctx context.Context, actor model.Actor, in PromoCodeInput) (PromoCodeOutput, error) {
	if err := requireAdmin(actor); err != nil {
		return PromoCodeOutput{}, err
	}
	if err := u.validator.ValidatePromoCode(in); err != nil {
		return PromoCodeOutput{}, err
	}

	from, err := time.ParseInLocation(model.DateLayout, strings.TrimSpace(in.ValidFrom), time.UTC)
	if err != nil {
		return PromoCodeOutput{}, NewValidationError(map[string]string{"valid_from": "invalid date"})
	}
	to, err := time.ParseInLocation(model.DateLayout, strings.TrimSpace(in.ValidTo), time.UTC)
	if err != nil {
		return PromoCodeOutput{}, NewValidationError(map[string]string{"valid_to": "invalid date"})
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	var out PromoCodeOutput
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.PromoCodes().Create(ctx, model.PromoCode{
			Code:            strings.TrimSpace(in.Code),
			DiscountPercent: in.DiscountPercent,
			IsActive:        active,
			ValidFrom:       from,
			ValidTo:         to,
		})
		if errors.Is(err, repo.ErrDuplicate) {
			return NewHTTPError(http.StatusConflict, "promo code already exists")
		}
		if err != nil {
			return internalError(ctx, "create promo code", err)
		}

		out = toPromoCodeOutput(p)
		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID:  actor.UserID,
			Action:       model.AuditActionCreatePromoCode,
			ResourceType: model.AuditResourcePromoCode,
			ResourceID:   p.ID,
			AfterJSON:    toJSON(out),
			CreatedAt:    u.clock.Now(),
		}); err != nil {
			return internalError(ctx, "create audit log", err)
		}
		return nil
	})
	if err != nil {
		return PromoCodeOutput{}, err
	}
	return out, nil
}

// 以降の注文では使えなくなる。過去の注文は参照を保ったまま
func (u *PromoCodeUsecase) Deactivate(ctx context.Context, actor model.Actor, promoID int64) (PromoCodeOutput, error) {
	if err := requireAdmin(actor); err != nil {
		return PromoCodeOutput{}, err
	}
	if promoID <= 0 {
		return PromoCodeOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out PromoCodeOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.PromoCodes().FindByID(ctx, promoID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return internalError(ctx, "find promo code", err)
		}

		if p.IsActive {
			if err := r.PromoCodes().Deactivate(ctx, promoID); err != nil {
				return internalError(ctx, "deactivate promo code", err)
			}
			if err := r.AuditLogs().Create(ctx, model.AuditLog{
				ActorUserID:  actor.UserID,
				Action:       model.AuditActionDeactivatePromoCode,
				ResourceType: model.AuditResourcePromoCode,
				ResourceID:   promoID,
				BeforeJSON:   `{"is_active":true}`,
				AfterJSON:    `{"is_active":false}`,
				CreatedAt:    u.clock.Now(),
			}); err != nil {
				return internalError(ctx, "create audit log", err)
			}
			p.IsActive = false
		}

		out = toPromoCodeOutput(p)
		return nil
	})
	if err != nil {
		return PromoCodeOutput{}, err
	}
	return out, nil
}

// 削除しても注文は残る（promo_codeはnullになる）
func (u *PromoCodeUsecase) Delete(ctx context.Context, actor model.Actor, promoID int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if promoID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.PromoCodes().FindByID(ctx, promoID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return internalError(ctx, "find promo code", err)
		}

		if err := r.PromoCodes().Delete(ctx, promoID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return internalError(ctx, "delete promo code", err)
		}

		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID:  actor.UserID,
			Action:       model.AuditActionDeletePromoCode,
			ResourceType: model.AuditResourcePromoCode,
			ResourceID:   promoID,
			BeforeJSON:   toJSON(toPromoCodeOutput(p)),
			CreatedAt:    u.clock.Now(),
		}); err != nil {
			return internalError(ctx, "create audit log", err)
		}
		return nil
	})
}

func toPromoCodeOutput(p model.PromoCode) PromoCodeOutput {
	return PromoCodeOutput{
		ID:              p.ID,
		Code:            p.Code,
		DiscountPercent: p.DiscountPercent,
		IsActive:        p.IsActive,
		ValidFrom:       p.ValidFrom.Format(model.DateLayout),
		ValidTo:         p.ValidTo.Format(model.DateLayout),
		CreatedAt:       p.CreatedAt,
	}
}
