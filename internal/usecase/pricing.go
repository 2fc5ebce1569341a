package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// カート1行の価格付け結果
type PricedItem struct {
	Product  model.Product `json:"product"`
	Quantity int64         `json:"quantity"`
	Subtotal int64         `json:"subtotal"`
}

// カート全体の価格付け結果
type PricedCart struct {
	Items []PricedItem `json:"items"`
	Total int64        `json:"total"`
}

// 価格計算に必要な最小の依存
type ProductLookup interface {
	FindByID(ctx context.Context, id int64) (model.Product, error)
}

// PriceCart はカートを価格付けする純粋な計算。副作用なし。
// 商品が解決できない行（削除済みなど）は黙って読み飛ばす方針。
// 数量はカートに保存された値をそのまま使う（丸めない）。
func PriceCart(ctx context.Context, cart model.Cart, products ProductLookup) (PricedCart, error) {
	out := PricedCart{Items: []PricedItem{}}

	// マップ順は不定なので、出力を安定させるためにキーを整列する
	keys := make([]string, 0, len(cart))
	for key := range cart {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		qty := cart[key]

		productID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			//数値でないキーは解決不能として読み飛ばす
			continue
		}

		p, err := products.FindByID(ctx, productID)
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			return PricedCart{}, err
		}

		subtotal := p.SellingPrice * qty
		out.Items = append(out.Items, PricedItem{
			Product:  p,
			Quantity: qty,
			Subtotal: subtotal,
		})
		out.Total += subtotal
	}

	return out, nil
}

// 合計（整数ルピー）をゲートウェイの最小通貨単位（パイサ）へ変換する。
func OrderAmount(total int64) int64 {
	return total * 100
}
