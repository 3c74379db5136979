package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CustomerRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/customers", h.list)
	e.GET("/customers/document/:document", h.byDocument)
	e.GET("/customers/:id", h.detail)
	e.POST("/customers", h.create)
	e.PUT("/customers/:id", h.update)
	e.DELETE("/customers/:id", h.delete)
}

func (h *CustomerHandler) list(c echo.Context) error {
	items, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CustomerHandler) detail(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	item, err := h.uc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CustomerHandler) byDocument(c echo.Context) error {
	item, err := h.uc.GetCustomerByDocument(c.Request().Context(), c.Param("document"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CustomerHandler) create(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.CreateCustomer(c.Request().Context(), usecase.CustomerInput{
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

func (h *CustomerHandler) update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.UpdateCustomer(c.Request().Context(), id, usecase.CustomerInput{
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *CustomerHandler) delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteCustomer(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
