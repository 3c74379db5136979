package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type VehicleRequest struct {
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	ModelYear string `json:"model_year"`
}

type VehicleHandler struct {
	uc *usecase.VehicleUsecase
}

func NewVehicleHandler(uc *usecase.VehicleUsecase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

func (h *VehicleHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/vehicles", h.list)
	e.GET("/vehicles/:id", h.detail)
	e.POST("/vehicles", h.create)
	e.PUT("/vehicles/:id", h.update)
	e.DELETE("/vehicles/:id", h.delete)
}

func (h *VehicleHandler) list(c echo.Context) error {
	items, err := h.uc.ListVehicles(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *VehicleHandler) detail(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	item, err := h.uc.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *VehicleHandler) create(c echo.Context) error {
	var req VehicleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.CreateVehicle(c.Request().Context(), usecase.VehicleInput{
		Name:      req.Name,
		Brand:     req.Brand,
		ModelYear: req.ModelYear,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

func (h *VehicleHandler) update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req VehicleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.UpdateVehicle(c.Request().Context(), id, usecase.VehicleInput{
		Name:      req.Name,
		Brand:     req.Brand,
		ModelYear: req.ModelYear,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *VehicleHandler) delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteVehicle(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
