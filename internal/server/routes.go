package server

import "github.com/labstack/echo/v4"

// ルートを持つハンドラ
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

func RegisterRoutes(e *echo.Echo, handlers ...RouteRegistrar) {
	for _, h := range handlers {
		h.RegisterRoutes(e)
	}
}
