package repository

import (
	"context"

	"app/internal/domain/model"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)
	FindByDocument(ctx context.Context, document string) (model.Customer, error)
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
	Delete(ctx context.Context, id int64) error
}
