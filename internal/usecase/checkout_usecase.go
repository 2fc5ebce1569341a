package usecase

import (
	"context"
	"net/http"

	repo "app/internal/repository"
)

// ゲートウェイへの注文作成依頼。Amountは最小通貨単位（パイサ）。
type CreateOrderInput struct {
	Amount      int64
	Currency    string
	Receipt     string
	AutoCapture bool
}

// ゲートウェイ側で採番された注文
type GatewayOrder struct {
	ID string
}

// 決済ゲートウェイとの約束。実装は internal/infra/payment。
type PaymentGateway interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (GatewayOrder, error)
	//支払い完了通知の署名検証
	VerifyPayment(orderID string, paymentID string, signature string) bool
	//フロントに渡す公開キー
	KeyID() string
}

// レシート番号などのIDを作る約束
type IDGenerator interface {
	NewID() string
}

// CheckoutUsecase はカート・カタログ・価格計算を束ねて
// ゲートウェイ注文を作るオーケストレータ。
// ローカルに注文行は作らない（確定はゲートウェイ側の支払いで行う）。
type CheckoutUsecase struct {
	carts    repo.SessionCartRepository
	products repo.ProductRepository
	gateway  PaymentGateway
	idGen    IDGenerator
	currency string
}

// DI
func NewCheckoutUsecase(
	carts repo.SessionCartRepository,
	products repo.ProductRepository,
	gateway PaymentGateway,
	idGen IDGenerator,
	currency string,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		carts:    carts,
		products: products,
		gateway:  gateway,
		idGen:    idGen,
		currency: currency,
	}
}

// 確認画面用のコンテキスト。リクエストごとに作り直す。
type CheckoutContext struct {
	Items       []PricedItem `json:"items"`
	Total       int64        `json:"total"`
	OrderID     string       `json:"razorpay_order_id"`
	OrderAmount int64        `json:"order_amount"`
	Currency    string       `json:"order_currency"`
	GatewayKey  string       `json:"razorpay_key"`
}

// InitiateCheckout はカートを価格付けし、ゲートウェイに注文を1件作る。
// ゲートウェイ失敗時はGatewayErrorをそのまま返し、カートには触れない。
// 冪等キーは使わない（呼び直すたびに新しいゲートウェイ注文ができる）。
func (u *CheckoutUsecase) InitiateCheckout(ctx context.Context, sessionKey string) (CheckoutContext, error) {
	if sessionKey == "" {
		return CheckoutContext{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}

	cart, err := u.carts.Get(ctx, sessionKey)
	if err != nil {
		return CheckoutContext{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	priced, err := PriceCart(ctx, cart, u.products)
	if err != nil {
		return CheckoutContext{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//空カート（解決できる商品が1つも無い場合も含む）は注文を作らない
	if len(priced.Items) == 0 {
		return CheckoutContext{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	amount := OrderAmount(priced.Total)

	order, err := u.gateway.CreateOrder(ctx, CreateOrderInput{
		Amount:      amount,
		Currency:    u.currency,
		Receipt:     u.idGen.NewID(),
		AutoCapture: true,
	})
	if err != nil {
		//GatewayErrorはそのまま上へ。リトライも巻き戻しもしない
		return CheckoutContext{}, err
	}

	return CheckoutContext{
		Items:       priced.Items,
		Total:       priced.Total,
		OrderID:     order.ID,
		OrderAmount: amount,
		Currency:    u.currency,
		GatewayKey:  u.gateway.KeyID(),
	}, nil
}

// 支払い完了通知の入力
type ConfirmPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

// ConfirmPayment はゲートウェイの署名を検証してから成功を返す。
// 無条件に成功を返してはいけない（署名なしの通知は偽装できる）。
func (u *CheckoutUsecase) ConfirmPayment(ctx context.Context, in ConfirmPaymentInput) error {
	if in.OrderID == "" || in.PaymentID == "" || in.Signature == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid payment confirmation")
	}

	if !u.gateway.VerifyPayment(in.OrderID, in.PaymentID, in.Signature) {
		return NewHTTPError(http.StatusBadRequest, "signature verification failed")
	}

	return nil
}
