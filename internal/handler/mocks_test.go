package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"app/internal/domain/model"
	appmw "app/internal/middleware"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（usecase側のテストと同じ作り）
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListTrending(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListVisibleByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	args := m.Called(ctx, categoryID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindVisibleByCategoryAndName(ctx context.Context, categoryID int64, name string) (model.Product, error) {
	args := m.Called(ctx, categoryID, name)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) ListVisible(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *CategoryRepoMock) FindVisibleByName(ctx context.Context, name string) (model.Category, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

type GatewayMock struct{ mock.Mock }

func (m *GatewayMock) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (usecase.GatewayOrder, error) {
	args := m.Called(ctx, in)
	o, _ := args.Get(0).(usecase.GatewayOrder)
	return o, args.Error(1)
}

func (m *GatewayMock) VerifyPayment(orderID string, paymentID string, signature string) bool {
	args := m.Called(orderID, paymentID, signature)
	return args.Bool(0)
}

func (m *GatewayMock) KeyID() string {
	return "rzp_test_key"
}

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[string]model.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]model.Cart{}}
}

func (f *fakeCartRepo) Get(ctx context.Context, sessionKey string) (model.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart, ok := f.carts[sessionKey]
	if !ok {
		return model.Cart{}, nil
	}
	return cart.Snapshot(), nil
}

func (f *fakeCartRepo) Put(ctx context.Context, sessionKey string, cart model.Cart) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts[sessionKey] = cart.Snapshot()
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, sessionKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.carts, sessionKey)
	return nil
}

type fixedIDGen struct{ id string }

func (g *fixedIDGen) NewID() string { return g.id }

// =====================
// helpers
// =====================

// セッションIDをコンテキストへ直接差し込んだEchoを返す。
// sidが空ならセッション無しのリクエストを再現できる。
func newTestEcho(sid string) *echo.Echo {
	e := echo.New()
	if sid != "" {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.Set(appmw.CtxSessionKey, sid)
				return next(c)
			}
		})
	}
	return e
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// カタログに2商品だけある状態を作る（id=7は公開、id=8は非公開）
func catalogWith7and8(m *ProductRepoMock) {
	p7 := model.Product{ID: 7, Name: "Beans", CategoryID: 1, OriginalPrice: 300, SellingPrice: 250, IsActive: true}
	p8 := model.Product{ID: 8, Name: "Hidden", CategoryID: 1, OriginalPrice: 120, SellingPrice: 100, IsActive: false}
	m.On("FindByID", mock.Anything, int64(7)).Return(p7, nil)
	m.On("FindByID", mock.Anything, int64(8)).Return(p8, nil)
	m.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)
}
