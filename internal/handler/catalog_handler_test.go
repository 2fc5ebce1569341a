package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/domain/model"
	"app/internal/handler"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCatalogEcho(categories *CategoryRepoMock, products *ProductRepoMock) *echo.Echo {
	h := handler.NewCatalogHandler(usecase.NewCatalogUsecase(categories, products))
	e := newTestEcho("")
	h.RegisterRoutes(e)
	return e
}

func TestCatalogHandler_Home_ListsTrending(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("ListTrending", mock.Anything).Return([]model.Product{
		{ID: 7, Name: "Beans", Trending: true, IsActive: true},
	}, nil)

	e := newCatalogEcho(new(CategoryRepoMock), products)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["products"], 1)
}

func TestCatalogHandler_UnknownCategory_404WithFallback(t *testing.T) {
	categories := new(CategoryRepoMock)
	categories.On("FindVisibleByName", mock.Anything, "nope").Return(model.Category{}, repo.ErrNotFound)

	e := newCatalogEcho(categories, new(ProductRepoMock))

	req := httptest.NewRequest(http.MethodGet, "/collections/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "category not found", body["error"])
	assert.Equal(t, "/collections", body["fallback"])
}

func TestCatalogHandler_UnknownProduct_404FallbackToCategory(t *testing.T) {
	categories := new(CategoryRepoMock)
	products := new(ProductRepoMock)

	cat := model.Category{ID: 1, Name: "coffee", IsActive: true}
	categories.On("FindVisibleByName", mock.Anything, "coffee").Return(cat, nil)
	products.On("FindVisibleByCategoryAndName", mock.Anything, int64(1), "Nope").Return(model.Product{}, repo.ErrNotFound)

	e := newCatalogEcho(categories, products)

	req := httptest.NewRequest(http.MethodGet, "/collections/coffee/Nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "product not found", body["error"])
	assert.Equal(t, "/collections/coffee", body["fallback"])
}

func TestCatalogHandler_FallbackEscapesCategoryName(t *testing.T) {
	categories := new(CategoryRepoMock)
	products := new(ProductRepoMock)

	//予約文字入りのカテゴリ名でもfallbackは有効なURLになる
	cat := model.Category{ID: 1, Name: `coffee"beans`, IsActive: true}
	categories.On("FindVisibleByName", mock.Anything, `coffee"beans`).Return(cat, nil)
	products.On("FindVisibleByCategoryAndName", mock.Anything, int64(1), "Nope").Return(model.Product{}, repo.ErrNotFound)

	e := newCatalogEcho(categories, products)

	req := httptest.NewRequest(http.MethodGet, `/collections/coffee"beans/Nope`, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "/collections/coffee%22beans", body["fallback"])
}

func TestCatalogHandler_ProductDetail_Success(t *testing.T) {
	categories := new(CategoryRepoMock)
	products := new(ProductRepoMock)

	cat := model.Category{ID: 1, Name: "coffee", IsActive: true}
	p := model.Product{ID: 7, Name: "Beans", CategoryID: 1, OriginalPrice: 300, SellingPrice: 250, IsActive: true}
	categories.On("FindVisibleByName", mock.Anything, "coffee").Return(cat, nil)
	products.On("FindVisibleByCategoryAndName", mock.Anything, int64(1), "Beans").Return(p, nil)

	e := newCatalogEcho(categories, products)

	req := httptest.NewRequest(http.MethodGet, "/collections/coffee/Beans", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(50), body["savings"])
}
