package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler はルート登録できるハンドラ。
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}

func RegisterRoutes(e *echo.Echo, handlers ...Handler) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for _, h := range handlers {
		h.RegisterRoutes(e)
	}
}
