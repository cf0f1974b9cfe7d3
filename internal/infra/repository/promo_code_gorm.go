package repository

import (
	"context"

	"foodapp/internal/domain/model"
	repo "foodapp/internal/repository"

	"gorm.io/gorm"
)

type PromoCodeGormRepository struct {
	db *gorm.DB
}

func NewPromoCodeGormRepository(db *gorm.DB) *PromoCodeGormRepository {
	return &PromoCodeGormRepository{db: db}
}

// 有効期間とis_activeの判定はmodel側（RedeemableOn）でやる
func (r *PromoCodeGormRepository) FindByCode(ctx context.Context, code string) (model.PromoCode, error) {
	var p model.PromoCode
	err := forShare(r.db.WithContext(ctx)).
		Where("code = ?", code).
		First(&p).Error
	if isNotFound(err) {
		return model.PromoCode{}, repo.ErrNotFound
	}
	if err != nil {
		return model.PromoCode{}, err
	}
	return p, nil
}

func (r *PromoCodeGormRepository) FindByID(ctx context.Context, id int64) (model.PromoCode, error) {
	var p model.PromoCode
	err := r.db.WithContext(ctx).First(&p, id).Error
	if isNotFound(err) {
		return model.PromoCode{}, repo.ErrNotFound
	}
	if err != nil {
		return model.PromoCode{}, err
	}
	return p, nil
}

func (r *PromoCodeGormRepository) List(ctx context.Context) ([]model.PromoCode, error) {
	var list []model.PromoCode
	if err := r.db.WithContext(ctx).Order("id desc").Find(&list).Error; err != nil {
		return []model.PromoCode{}, err
	}
	return list, nil
}

func (r *PromoCodeGormRepository) Create(ctx context.Context, p model.PromoCode) (model.PromoCode, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		if isUniqueViolation(err) {
			return model.PromoCode{}, repo.ErrDuplicate
		}
		return model.PromoCode{}, err
	}
	return p, nil
}

func (r *PromoCodeGormRepository) Deactivate(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.PromoCode{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 注文は残し、参照だけNULLにする（ON DELETE SET NULL 相当）
func (r *PromoCodeGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Order{}).
			Where("promo_code_id = ?", id).
			Update("promo_code_id", nil).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.PromoCode{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}
