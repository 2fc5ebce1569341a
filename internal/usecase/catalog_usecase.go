package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CatalogUsecase はカタログ閲覧（トップ・カテゴリ・商品詳細）の読み取りロジック。
// 書き込みは無い。カタログの管理は外部で行う。
type CatalogUsecase struct {
	categories repo.CategoryRepository
	products   repo.ProductRepository
}

// DI
func NewCatalogUsecase(
	categories repo.CategoryRepository,
	products repo.ProductRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		categories: categories,
		products:   products,
	}
}

// トップ用のトレンド商品一覧
func (u *CatalogUsecase) ListTrending(ctx context.Context) ([]model.Product, error) {
	products, err := u.products.ListTrending(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

// 公開中カテゴリの一覧
func (u *CatalogUsecase) ListCollections(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categories.ListVisible(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

type CollectionOutput struct {
	Category model.Category  `json:"category"`
	Products []model.Product `json:"products"`
}

// カテゴリ名から公開中の商品一覧を返す。
// カテゴリが無い・非公開なら404（呼び出し側でカテゴリ一覧へ誘導する）。
func (u *CatalogUsecase) CollectionProducts(ctx context.Context, name string) (CollectionOutput, error) {
	category, err := u.categories.FindVisibleByName(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		return CollectionOutput{}, NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return CollectionOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.products.ListVisibleByCategory(ctx, category.ID)
	if err != nil {
		return CollectionOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CollectionOutput{
		Category: category,
		Products: products,
	}, nil
}

type ProductDetailOutput struct {
	Category model.Category `json:"category"`
	Product  model.Product  `json:"product"`
	Savings  int64          `json:"savings"`
}

// カテゴリ名と商品名から商品詳細を返す。
// どちらも公開中のものだけが対象。
func (u *CatalogUsecase) ProductDetail(ctx context.Context, categoryName string, productName string) (ProductDetailOutput, error) {
	category, err := u.categories.FindVisibleByName(ctx, categoryName)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	product, err := u.products.FindVisibleByCategoryAndName(ctx, category.ID, productName)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductDetailOutput{
		Category: category,
		Product:  product,
		Savings:  product.Savings(),
	}, nil
}
