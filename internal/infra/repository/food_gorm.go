package repository

import (
	"context"

	"foodapp/internal/domain/model"
	repo "foodapp/internal/repository"

	"gorm.io/gorm"
)

type FoodGormRepository struct {
	db *gorm.DB
}

// DI
func NewFoodGormRepository(db *gorm.DB) *FoodGormRepository {
	return &FoodGormRepository{db: db}
}

// カテゴリ/販売中フィルタとページング付きで返す。
func (r *FoodGormRepository) List(ctx context.Context, q repo.FoodListQuery) ([]model.Food, int64, error) {
	var foods []model.Food
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Food{})

	if q.OnlyAvailable {
		tx = tx.Where("is_available = ?", true)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}

	//total（件数）
	if err := tx.Count(&total).Error; err != nil {
		return []model.Food{}, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	if err := tx.Order("id asc").Offset(offset).Limit(q.Limit).Find(&foods).Error; err != nil {
		return []model.Food{}, 0, err
	}

	return foods, total, nil
}

// IDで商品を取得
func (r *FoodGormRepository) FindByID(ctx context.Context, id int64) (model.Food, error) {
	var f model.Food
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if isNotFound(err) {
		return model.Food{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Food{}, err
	}
	return f, nil
}

func (r *FoodGormRepository) Create(ctx context.Context, f model.Food) (model.Food, error) {
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		return model.Food{}, err
	}
	return f, nil
}

// 既存の注文明細は価格スナップショットなので、ここで何を変えても影響しない
func (r *FoodGormRepository) Update(ctx context.Context, f model.Food) error {
	res := r.db.WithContext(ctx).Model(&model.Food{}).Where("id = ?", f.ID).Updates(map[string]interface{}{
		"name":         f.Name,
		"price":        f.Price,
		"category":     f.Category,
		"is_available": f.IsAvailable,
		"image_url":    f.ImageURL,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *FoodGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Food{}, id)
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return repo.ErrReferenced
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
