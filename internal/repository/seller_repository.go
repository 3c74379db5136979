package repository

import (
	"context"

	"app/internal/domain/model"
)

type SellerRepository interface {
	List(ctx context.Context) ([]model.Seller, error)
	FindByID(ctx context.Context, id int64) (model.Seller, error)
	Create(ctx context.Context, s model.Seller) (model.Seller, error)
	Update(ctx context.Context, s model.Seller) error
	Delete(ctx context.Context, id int64) error
}
