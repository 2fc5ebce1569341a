package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestPriceCart_SubtotalAndTotal(t *testing.T) {
	ctx := context.Background()

	products := new(ProductRepoMock)
	catalogWith7and8(products)

	cart := model.Cart{"7": 2}

	out, err := usecase.PriceCart(ctx, cart, products)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(7), out.Items[0].Product.ID)
	assert.Equal(t, int64(2), out.Items[0].Quantity)
	assert.Equal(t, int64(500), out.Items[0].Subtotal)
	assert.Equal(t, int64(500), out.Total)

	//最小通貨単位（パイサ）変換
	assert.Equal(t, int64(50000), usecase.OrderAmount(out.Total))
}

func TestPriceCart_SkipsMissingProducts(t *testing.T) {
	ctx := context.Background()

	products := new(ProductRepoMock)
	catalogWith7and8(products)

	//99はカタログに無い → エラーにせず読み飛ばす
	cart := model.Cart{"7": 2, "99": 1}

	out, err := usecase.PriceCart(ctx, cart, products)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(500), out.Total)
}

func TestPriceCart_IncludesHiddenProducts(t *testing.T) {
	ctx := context.Background()

	products := new(ProductRepoMock)
	catalogWith7and8(products)

	//非公開になった商品もカートに入っていれば価格計算に含める
	cart := model.Cart{"8": 1}

	out, err := usecase.PriceCart(ctx, cart, products)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(100), out.Total)
}

func TestPriceCart_EmptyCart(t *testing.T) {
	ctx := context.Background()

	products := new(ProductRepoMock)

	out, err := usecase.PriceCart(ctx, model.Cart{}, products)
	assert.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.Total)
}

func TestPriceCart_DeterministicOrder(t *testing.T) {
	ctx := context.Background()

	products := new(ProductRepoMock)
	catalogWith7and8(products)

	cart := model.Cart{"8": 1, "7": 1}

	out, err := usecase.PriceCart(ctx, cart, products)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 2)
	//キーの文字列順で安定
	assert.Equal(t, int64(7), out.Items[0].Product.ID)
	assert.Equal(t, int64(8), out.Items[1].Product.ID)
}
