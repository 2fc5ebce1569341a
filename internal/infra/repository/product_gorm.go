package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// トップ用。公開中かつトレンド指定の商品のみ。
func (r *ProductGormRepository) ListTrending(ctx context.Context) ([]model.Product, error) {
	var products []model.Product

	err := r.db.WithContext(ctx).
		Where("trending = ? AND is_active = ?", true, true).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// カテゴリ内の公開中商品を一覧で返す。
func (r *ProductGormRepository) ListVisibleByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	var products []model.Product

	err := r.db.WithContext(ctx).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// カテゴリ内で名前から公開中商品を1件取得
func (r *ProductGormRepository) FindVisibleByCategoryAndName(ctx context.Context, categoryID int64, name string) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).
		Where("category_id = ? AND name = ? AND is_active = ?", categoryID, name, true).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// IDで商品を取得。公開フィルタは掛けない（カート解決用）。
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}
