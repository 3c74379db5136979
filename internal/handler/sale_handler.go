package handler

import (
	"net/http"
	"time"

	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type SaleItemRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type SaleRequest struct {
	CustomerID     int64             `json:"customer_id"`
	SellerID       int64             `json:"seller_id"`
	IdempotencyKey string            `json:"idempotency_key"`
	Items          []SaleItemRequest `json:"items"`
}

type SaleHandler struct {
	uc *usecase.SaleUsecase
}

// DI
func NewSaleHandler(uc *usecase.SaleUsecase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

func (h *SaleHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/sales", h.register)
	e.GET("/sales/period", h.listByPeriod)
	e.GET("/sales/:id", h.detail)
}

func (h *SaleHandler) register(c echo.Context) error {
	var req SaleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	// キー未指定ならサーバー側で発行（リトライ時はクライアントが同じキーを送る）
	key := req.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	items := make([]usecase.SaleItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.SaleItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	out, err := h.uc.RegisterSale(c.Request().Context(), usecase.RegisterSaleInput{
		CustomerID:     req.CustomerID,
		SellerID:       req.SellerID,
		IdempotencyKey: key,
		Items:          items,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *SaleHandler) detail(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetSale(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SaleHandler) listByPeriod(c echo.Context) error {
	from, ok := parseDate(c.QueryParam("from"))
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from"})
	}
	to, ok := parseDate(c.QueryParam("to"))
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to"})
	}

	// 日付だけ指定されたときはtoを当日いっぱいにする
	if to.Hour() == 0 && to.Minute() == 0 && to.Second() == 0 {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	outs, err := h.uc.ListSalesByPeriod(c.Request().Context(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, outs)
}

// RFC3339 か YYYY-MM-DD を受け付ける
func parseDate(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, true
	}
	return time.Time{}, false
}
