package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	catalogH *handler.CatalogHandler,
	cartH *handler.CartHandler,
	checkoutH *handler.CheckoutHandler,
	authH *handler.AuthHandler,
) {
	catalogH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	checkoutH.RegisterRoutes(e)
	authH.RegisterRoutes(e)
}
