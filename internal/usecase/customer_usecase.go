package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CustomerUsecase struct {
	customers repo.CustomerRepository
}

func NewCustomerUsecase(customers repo.CustomerRepository) *CustomerUsecase {
	return &CustomerUsecase{customers: customers}
}

type CustomerInput struct {
	Name     string
	Document string
	Email    string
	Phone    string
}

func (u *CustomerUsecase) validate(in CustomerInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Document) == "" {
		return NewHTTPError(http.StatusBadRequest, "document required")
	}
	return nil
}

func (u *CustomerUsecase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	items, err := u.customers.List(ctx)
	if err != nil {
		return []model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CustomerUsecase) GetCustomer(ctx context.Context, id int64) (model.Customer, error) {
	if id <= 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	c, err := u.customers.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CustomerUsecase) GetCustomerByDocument(ctx context.Context, document string) (model.Customer, error) {
	document = strings.TrimSpace(document)
	if document == "" {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "document required")
	}
	c, err := u.customers.FindByDocument(ctx, document)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CustomerUsecase) CreateCustomer(ctx context.Context, in CustomerInput) (int64, error) {
	if err := u.validate(in); err != nil {
		return 0, err
	}
	c, err := u.customers.Create(ctx, model.Customer{
		Name:     strings.TrimSpace(in.Name),
		Document: strings.TrimSpace(in.Document),
		Email:    in.Email,
		Phone:    in.Phone,
	})
	if err == repo.ErrDuplicate {
		return 0, NewHTTPError(http.StatusConflict, "document already registered")
	}
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c.ID, nil
}

func (u *CustomerUsecase) UpdateCustomer(ctx context.Context, id int64, in CustomerInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.validate(in); err != nil {
		return err
	}
	err := u.customers.Update(ctx, model.Customer{
		ID:       id,
		Name:     strings.TrimSpace(in.Name),
		Document: strings.TrimSpace(in.Document),
		Email:    in.Email,
		Phone:    in.Phone,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err == repo.ErrDuplicate {
		return NewHTTPError(http.StatusConflict, "document already registered")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CustomerUsecase) DeleteCustomer(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.customers.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
