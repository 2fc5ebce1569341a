package handler

import (
	"net/http"
	"net/url"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// 404のときに誘導先を添えて返す
type NotFoundResponse struct {
	Error    string `json:"error"`
	Fallback string `json:"fallback"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}
	if _, ok := usecase.AsGatewayError(err); ok {
		//ゲートウェイ失敗はチェックアウト失敗として返す
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "payment gateway error"})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// カタログ閲覧の公開API
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// 公開カタログのルートを登録
func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.home)
	e.GET("/collections", h.collections)
	e.GET("/collections/:name", h.collectionProducts)
	e.GET("/collections/:cname/:pname", h.productDetail)
}

// トップ。トレンド商品の一覧を返す。
func (h *CatalogHandler) home(c echo.Context) error {
	products, err := h.uc.ListTrending(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"products": products})
}

// 公開中カテゴリの一覧
func (h *CatalogHandler) collections(c echo.Context) error {
	categories, err := h.uc.ListCollections(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"categories": categories})
}

// カテゴリ内の商品一覧。カテゴリが無ければ404＋一覧への誘導。
func (h *CatalogHandler) collectionProducts(c echo.Context) error {
	name := c.Param("name")

	out, err := h.uc.CollectionProducts(c.Request().Context(), name)
	if err != nil {
		if he, ok := usecase.AsHTTPError(err); ok && he.Status == http.StatusNotFound {
			return c.JSON(http.StatusNotFound, NotFoundResponse{
				Error:    he.Message,
				Fallback: "/collections",
			})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 商品詳細。商品だけ無い場合はカテゴリの一覧へ誘導する。
func (h *CatalogHandler) productDetail(c echo.Context) error {
	cname := c.Param("cname")
	pname := c.Param("pname")

	out, err := h.uc.ProductDetail(c.Request().Context(), cname, pname)
	if err != nil {
		if he, ok := usecase.AsHTTPError(err); ok && he.Status == http.StatusNotFound {
			fallback := "/collections"
			if he.Message == "product not found" {
				//カテゴリ名はURLにそのまま入るのでエスケープする
				fallback = "/collections/" + url.PathEscape(cname)
			}
			return c.JSON(http.StatusNotFound, NotFoundResponse{
				Error:    he.Message,
				Fallback: fallback,
			})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
