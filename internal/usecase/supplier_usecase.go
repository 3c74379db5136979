package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type SupplierUsecase struct {
	suppliers repo.SupplierRepository
}

func NewSupplierUsecase(suppliers repo.SupplierRepository) *SupplierUsecase {
	return &SupplierUsecase{suppliers: suppliers}
}

type SupplierInput struct {
	Name    string
	Contact string
	Phone   string
	Email   string
}

func (u *SupplierUsecase) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	items, err := u.suppliers.List(ctx)
	if err != nil {
		return []model.Supplier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *SupplierUsecase) GetSupplier(ctx context.Context, id int64) (model.Supplier, error) {
	if id <= 0 {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	s, err := u.suppliers.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Supplier{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Supplier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *SupplierUsecase) CreateSupplier(ctx context.Context, in SupplierInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "name required")
	}
	s, err := u.suppliers.Create(ctx, model.Supplier{
		Name:    strings.TrimSpace(in.Name),
		Contact: in.Contact,
		Phone:   in.Phone,
		Email:   in.Email,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s.ID, nil
}

func (u *SupplierUsecase) UpdateSupplier(ctx context.Context, id int64, in SupplierInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	err := u.suppliers.Update(ctx, model.Supplier{
		ID:      id,
		Name:    strings.TrimSpace(in.Name),
		Contact: in.Contact,
		Phone:   in.Phone,
		Email:   in.Email,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *SupplierUsecase) DeleteSupplier(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.suppliers.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
