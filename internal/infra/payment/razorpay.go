package payment

import (
	"context"

	"app/internal/usecase"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
	"go.uber.org/zap"
)

// Razorpayの注文作成クライアント。usecase.PaymentGateway の実装。
type RazorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

// DI
func NewRazorpayGateway(keyID string, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

// ゲートウェイ側に注文を作成してIDを返す。
// 転送・認証・レスポンス不正はすべて GatewayError にまとめる。
func (g *RazorpayGateway) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (usecase.GatewayOrder, error) {
	capture := 0
	if in.AutoCapture {
		capture = 1
	}

	data := map[string]interface{}{
		"amount":          in.Amount,
		"currency":        in.Currency,
		"receipt":         in.Receipt,
		"payment_capture": capture,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		zap.S().Errorw("razorpay order create failed", "err", err)
		return usecase.GatewayOrder{}, &usecase.GatewayError{Err: err}
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		zap.S().Errorw("razorpay order create: malformed response", "body", body)
		return usecase.GatewayOrder{}, &usecase.GatewayError{Err: usecase.ErrMalformedGatewayResponse}
	}

	return usecase.GatewayOrder{ID: id}, nil
}

// 支払い完了通知の署名検証（order_id|payment_id のHMAC）。
func (g *RazorpayGateway) VerifyPayment(orderID string, paymentID string, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, g.keySecret)
}

// フロントに渡す公開キー
func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}
