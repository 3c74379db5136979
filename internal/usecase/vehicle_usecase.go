package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type VehicleUsecase struct {
	vehicles repo.VehicleRepository
}

func NewVehicleUsecase(vehicles repo.VehicleRepository) *VehicleUsecase {
	return &VehicleUsecase{vehicles: vehicles}
}

type VehicleInput struct {
	Name      string
	Brand     string
	ModelYear string
}

func (u *VehicleUsecase) validate(in VehicleInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Brand) == "" {
		return NewHTTPError(http.StatusBadRequest, "brand required")
	}
	return nil
}

func (u *VehicleUsecase) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	items, err := u.vehicles.List(ctx)
	if err != nil {
		return []model.Vehicle{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *VehicleUsecase) GetVehicle(ctx context.Context, id int64) (model.Vehicle, error) {
	if id <= 0 {
		return model.Vehicle{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	v, err := u.vehicles.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Vehicle{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Vehicle{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return v, nil
}

func (u *VehicleUsecase) CreateVehicle(ctx context.Context, in VehicleInput) (int64, error) {
	if err := u.validate(in); err != nil {
		return 0, err
	}
	v, err := u.vehicles.Create(ctx, model.Vehicle{
		Name:      strings.TrimSpace(in.Name),
		Brand:     strings.TrimSpace(in.Brand),
		ModelYear: in.ModelYear,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return v.ID, nil
}

func (u *VehicleUsecase) UpdateVehicle(ctx context.Context, id int64, in VehicleInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.validate(in); err != nil {
		return err
	}
	err := u.vehicles.Update(ctx, model.Vehicle{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		Brand:     strings.TrimSpace(in.Brand),
		ModelYear: in.ModelYear,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *VehicleUsecase) DeleteVehicle(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.vehicles.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
