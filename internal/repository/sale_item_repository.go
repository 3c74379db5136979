package repository

import (
	"context"

	"app/internal/domain/model"
)

type SaleItemRepository interface {
	CreateBulk(ctx context.Context, saleID int64, items []model.SaleItem) error
	ListBySaleID(ctx context.Context, saleID int64) ([]model.SaleItem, error)
}
