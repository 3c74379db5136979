package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func Start(addr string, handlers ...Handler) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	RegisterRoutes(e, handlers...)
	return e.Start(addr)
}
