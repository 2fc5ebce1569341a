package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// カテゴリの取得だけを約束。書き込みはこのAPIでは行わない。
type CategoryRepository interface {
	//公開中カテゴリの一覧
	ListVisible(ctx context.Context) ([]model.Category, error)
	//名前で公開中カテゴリを1件取得。非公開・不存在は ErrNotFound
	FindVisibleByName(ctx context.Context, name string) (model.Category, error)
}

// 商品の取得だけを約束。書き込みはこのAPIでは行わない。
type ProductRepository interface {
	//トップ用のトレンド商品（公開中のみ）
	ListTrending(ctx context.Context) ([]model.Product, error)
	//カテゴリ内の公開中商品一覧
	ListVisibleByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)
	//カテゴリ内で名前から公開中商品を1件取得
	FindVisibleByCategoryAndName(ctx context.Context, categoryID int64, name string) (model.Product, error)
	// IDで取得。公開フィルタは掛けない（カート・価格計算用。
	// 非公開になった商品もカートに入っていれば解決できる）。
	FindByID(ctx context.Context, id int64) (model.Product, error)
}
