package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type SellerUsecase struct {
	sellers repo.SellerRepository
}

func NewSellerUsecase(sellers repo.SellerRepository) *SellerUsecase {
	return &SellerUsecase{sellers: sellers}
}

type SellerInput struct {
	Name  string
	Email string
	Phone string
}

func (u *SellerUsecase) ListSellers(ctx context.Context) ([]model.Seller, error) {
	items, err := u.sellers.List(ctx)
	if err != nil {
		return []model.Seller{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *SellerUsecase) GetSeller(ctx context.Context, id int64) (model.Seller, error) {
	if id <= 0 {
		return model.Seller{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	s, err := u.sellers.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Seller{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Seller{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *SellerUsecase) CreateSeller(ctx context.Context, in SellerInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "name required")
	}
	s, err := u.sellers.Create(ctx, model.Seller{
		Name:  strings.TrimSpace(in.Name),
		Email: in.Email,
		Phone: in.Phone,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s.ID, nil
}

func (u *SellerUsecase) UpdateSeller(ctx context.Context, id int64, in SellerInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	err := u.sellers.Update(ctx, model.Seller{
		ID:    id,
		Name:  strings.TrimSpace(in.Name),
		Email: in.Email,
		Phone: in.Phone,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *SellerUsecase) DeleteSeller(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.sellers.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
