package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// チェックアウトと支払い完了通知のHTTP
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// 支払い完了通知のリクエストボディ（ゲートウェイのコールバック形式）
type PaymentSuccessRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/checkout", h.checkout)
	e.POST("/payment/success", h.paymentSuccess)
}

// カートを価格付けしてゲートウェイ注文を作り、確認用コンテキストを返す。
// 呼ぶたびに新しいゲートウェイ注文ができる点に注意。
func (h *CheckoutHandler) checkout(c echo.Context) error {
	sid, ok := middleware.SessionKeyFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session"})
	}

	out, err := h.uc.InitiateCheckout(c.Request().Context(), sid)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// 署名が正しいときだけ成功を返す
func (h *CheckoutHandler) paymentSuccess(c echo.Context) error {
	var req PaymentSuccessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.ConfirmPayment(c.Request().Context(), usecase.ConfirmPaymentInput{
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "Payment successful!"})
}
