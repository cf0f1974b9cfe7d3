package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"foodapp/internal/domain/model"
	repo "foodapp/internal/repository"

	"github.com/shopspring/decimal"
)

// 商品入力のチェック
type FoodValidator interface {
	ValidateFood(in FoodInput) error
}

type FoodUsecase struct {
	foods     repo.FoodRepository
	tx        repo.TransactionManager
	validator FoodValidator
	clock     Clock
}

// DI
func NewFoodUsecase(
	foods repo.FoodRepository,
	tx repo.TransactionManager,
	v FoodValidator,
	clock Clock,
) *FoodUsecase {
	return &FoodUsecase{
		foods:     foods,
		tx:        tx,
		validator: v,
		clock:     clock,
	}
}

// GET /foodsの入力DTO
type ListFoodsInput struct {
	Page     int
	Limit    int
	Category string
}

type FoodListOutput struct {
	Items []model.Food `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

// 管理者以外には販売中の商品だけ見せる
func (u *FoodUsecase) ListFoods(ctx context.Context, actor model.Actor, in ListFoodsInput) (FoodListOutput, error) {
	if err := checkPaging(in.Page, in.Limit); err != nil {
		return FoodListOutput{}, err
	}
	category := model.FoodCategory(strings.TrimSpace(in.Category))
	if category != "" && !category.Valid() {
		return FoodListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	items, total, err := u.foods.List(ctx, repo.FoodListQuery{
		Page:          in.Page,
		Limit:         in.Limit,
		Category:      category,
		OnlyAvailable: !actor.IsAdmin,
	})
	if err != nil {
		return FoodListOutput{}, internalError(ctx, "list foods", err)
	}

	return FoodListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *FoodUsecase) GetFood(ctx context.Context, actor model.Actor, foodID int64) (model.Food, error) {
	if foodID <= 0 {
		return model.Food{}, NewHTTPError(http.StatusBadRequest, "invalid food id")
	}

	f, err := u.foods.FindByID(ctx, foodID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Food{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Food{}, internalError(ctx, "find food", err)
	}

	// 販売停止中は管理者以外には存在しない扱い
	if !f.IsAvailable && !actor.IsAdmin {
		return model.Food{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return f, nil
}

type FoodInput struct {
	Name     string
	Price    decimal.Decimal
	Category string
	// nilなら作成時はtrue、更新時は変えない
	IsAvailable *bool
	ImageURL    string
}

func (u *FoodUsecase) AdminCreateFood(ctx context.Context, actor model.Actor, in FoodInput) (model.Food, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Food{}, err
	}
	if err := u.validator.ValidateFood(in); err != nil {
		return model.Food{}, err
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	var created model.Food
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		f, err := r.Foods().Create(ctx, model.Food{
			Name:        strings.TrimSpace(in.Name),
			Price:       in.Price,
			Category:    model.FoodCategory(strings.TrimSpace(in.Category)),
			IsAvailable: available,
			ImageURL:    strings.TrimSpace(in.ImageURL),
		})
		if err != nil {
			return internalError(ctx, "create food", err)
		}

		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID:  actor.UserID,
			Action:       model.AuditActionCreateFood,
			ResourceType: model.AuditResourceFood,
			ResourceID:   f.ID,
			AfterJSON:    toJSON(f),
			CreatedAt:    u.clock.Now(),
		}); err != nil {
			return internalError(ctx, "create audit log", err)
		}
		created = f
		return nil
	})
	if err != nil {
		return model.Food{}, err
	}
	return created, nil
}

func (u *FoodUsecase) AdminUpdateFood(ctx context.Context, actor model.Actor, foodID int64, in FoodInput) (model.Food, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Food{}, err
	}
	if foodID <= 0 {
		return model.Food{}, NewHTTPError(http.StatusBadRequest, "invalid food id")
	}
	if err := u.validator.ValidateFood(in); err != nil {
		return model.Food{}, err
	}

	var updated model.Food
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//変更前（before）
		before, err := r.Foods().FindByID(ctx, foodID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return internalError(ctx, "find food", err)
		}

		after := before
		after.Name = strings.TrimSpace(in.Name)
		after.Price = in.Price
		after.Category = model.FoodCategory(strings.TrimSpace(in.Category))
		after.ImageURL = strings.TrimSpace(in.ImageURL)
		if in.IsAvailable != nil {
			after.IsAvailable = *in.IsAvailable
		}

		if err := r.Foods().Update(ctx, after); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return internalError(ctx, "update food", err)
		}

		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID:  actor.UserID,
			Action:       model.AuditActionUpdateFood,
			ResourceType: model.AuditResourceFood,
			ResourceID:   foodID,
			BeforeJSON:   toJSON(before),
			AfterJSON:    toJSON(after),
			CreatedAt:    u.clock.Now(),
		}); err != nil {
			return internalError(ctx, "create audit log", err)
		}
		updated = after
		return nil
	})
	if err != nil {
		return model.Food{}, err
	}
	return updated, nil
}

// 注文明細から参照されている商品は消せない（409）。販売停止で対応する
func (u *FoodUsecase) AdminDeleteFood(ctx context.Context, actor model.Actor, foodID int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if foodID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid food id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		before, err := r.Foods().FindByID(ctx, foodID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return internalError(ctx, "find food", err)
		}

		used, err := r.OrderItems().ExistsByFoodID(ctx, foodID)
		if err != nil {
			return internalError(ctx, "check order items", err)
		}
		if used {
			return NewHTTPError(http.StatusConflict, "food is referenced by orders")
		}

		if err := r.Foods().Delete(ctx, foodID); err != nil {
			switch {
			case errors.Is(err, repo.ErrNotFound):
				return NewHTTPError(http.StatusNotFound, "not found")
			case errors.Is(err, repo.ErrReferenced):
				return NewHTTPError(http.StatusConflict, "food is referenced by orders")
			}
			return internalError(ctx, "delete food", err)
		}

		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID:  actor.UserID,
			Action:       model.AuditActionDeleteFood,
			ResourceType: model.AuditResourceFood,
			ResourceID:   foodID,
			BeforeJSON:   toJSON(before),
			CreatedAt:    u.clock.Now(),
		}); err != nil {
			return internalError(ctx, "create audit log", err)
		}
		return nil
	})
}
