package usecase

import (
	"context"
	"errors"
	"net/http"

	repo "app/internal/repository"
)

// CartUsecase はセッションカートの業務ロジックです。
// カート本体は純粋なマップ（model.Cart）で、保存はSessionCartRepositoryに任せます。
type CartUsecase struct {
	carts    repo.SessionCartRepository
	products repo.ProductRepository
}

func NewCartUsecase(
	carts repo.SessionCartRepository,
	products repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		carts:    carts,
		products: products,
	}
}

// GetCart は価格付け済みのカートを返す（空なら items=[], total=0）。
func (u *CartUsecase) GetCart(ctx context.Context, sessionKey string) (PricedCart, error) {
	if sessionKey == "" {
		return PricedCart{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}

	cart, err := u.carts.Get(ctx, sessionKey)
	if err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	priced, err := PriceCart(ctx, cart, u.products)
	if err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return priced, nil
}

// AddToCart は数量を1加算する。商品が存在しなければ404。
// 公開フラグは見ない（カート追加は存在チェックのみ）。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionKey string, productID int64) (PricedCart, error) {
	if sessionKey == "" {
		return PricedCart{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}
	if productID <= 0 {
		return PricedCart{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	//存在チェック
	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return PricedCart{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.carts.Get(ctx, sessionKey)
	if err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart.Add(productID)

	if err := u.carts.Put(ctx, sessionKey, cart); err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	priced, err := PriceCart(ctx, cart, u.products)
	if err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return priced, nil
}

// UpdateQuantity はカートに入っている商品の数量を上書きする。
// 入っていない商品は何もしない（エラーにもしない）。
// 数量は1以上のみ受け付ける（0や負は400で弾く）。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionKey string, productID int64, qty int64) (PricedCart, error) {
	if sessionKey == "" {
		return PricedCart{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}
	if productID <= 0 {
		return PricedCart{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if qty < 1 {
		return PricedCart{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	cart, err := u.carts.Get(ctx, sessionKey)
	if err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart.SetQuantity(productID, qty)

	if err := u.carts.Put(ctx, sessionKey, cart); err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	priced, err := PriceCart(ctx, cart, u.products)
	if err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return priced, nil
}

// RemoveFromCart は商品をカートから取り除く。無ければ何もしない。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, sessionKey string, productID int64) (PricedCart, error) {
	if sessionKey == "" {
		return PricedCart{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}
	if productID <= 0 {
		return PricedCart{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	cart, err := u.carts.Get(ctx, sessionKey)
	if err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart.Remove(productID)

	if err := u.carts.Put(ctx, sessionKey, cart); err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	priced, err := PriceCart(ctx, cart, u.products)
	if err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return priced, nil
}

// BuyNow は既存カートを破棄して指定商品1点だけのカートにする。
// 以前の中身は戻せないので注意。
func (u *CartUsecase) BuyNow(ctx context.Context, sessionKey string, productID int64) (PricedCart, error) {
	if sessionKey == "" {
		return PricedCart{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}
	if productID <= 0 {
		return PricedCart{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return PricedCart{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.carts.Get(ctx, sessionKey)
	if err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart.ReplaceAll(productID, 1)

	if err := u.carts.Put(ctx, sessionKey, cart); err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	priced, err := PriceCart(ctx, cart, u.products)
	if err != nil {
		return PricedCart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return priced, nil
}
