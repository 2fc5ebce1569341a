package server

import (
	appmw "app/internal/middleware"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はミドルウェアを組み付けたEchoを返す。ルートはRegisterRoutesで登録する。
func New(store sessions.Store) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	//セッションCookie（署名付き）→ 全リクエストにセッションIDを割り当てる
	e.Use(echosession.Middleware(store))
	e.Use(appmw.EnsureSession())

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
