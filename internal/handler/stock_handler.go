package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StockAdjustRequest は在庫の加減算の入力です。
type StockAdjustRequest struct {
	Delta int64 `json:"delta"`
}

// /stock 在庫調整と通知
type StockHandler struct {
	uc *usecase.StockUsecase
}

// DI
func NewStockHandler(uc *usecase.StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

func (h *StockHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/stock/:product_id/adjust", h.adjust)
	e.POST("/stock/scan", h.scan)
	e.GET("/stock/notifications", h.listNotifications)
	e.PATCH("/stock/notifications/:id/resolve", h.resolveNotification)
}

func (h *StockHandler) adjust(c echo.Context) error {
	productID, ok := paramID(c, "product_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	var req StockAdjustRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.AdjustStock(c.Request().Context(), productID, req.Delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *StockHandler) scan(c echo.Context) error {
	created, err := h.uc.ScanLowStock(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"created": created})
}

func (h *StockHandler) listNotifications(c echo.Context) error {
	// resolved（省略時は全件）
	var resolved *bool
	if v := c.QueryParam("resolved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid resolved"})
		}
		resolved = &b
	}

	items, err := h.uc.ListNotifications(c.Request().Context(), resolved)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *StockHandler) resolveNotification(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.ResolveNotification(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "resolved"})
}
