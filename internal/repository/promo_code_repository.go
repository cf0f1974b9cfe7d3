package repository

import (
	"context"

	"foodapp/internal/domain/model"
)

type PromoCodeRepository interface {
	// codeが完全一致する1件。無ければErrNotFound
	// トランザクション内では行を共有ロックする（無効化と競合させない）
	FindByCode(ctx context.Context, code string) (model.PromoCode, error)
	FindByID(ctx context.Context, id int64) (model.PromoCode, error)
	List(ctx context.Context) ([]model.PromoCode, error)

	// code重複はErrDuplicate
	Create(ctx context.Context, p model.PromoCode) (model.PromoCode, error)
	Deactivate(ctx context.Context, id int64) error

	// 参照している注文のpromo_code_idはNULLにしてから消す
	Delete(ctx context.Context, id int64) error
}
