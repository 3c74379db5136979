package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type SalePeriodFilter struct {
	From time.Time
	To   time.Time
}

type SaleRepository interface {
	FindByID(ctx context.Context, saleID int64) (model.Sale, error)

	//検索（同じキーなら同じ結果を返す）
	FindByIdempotencyKey(ctx context.Context, key string) (model.Sale, bool, error)

	ListByPeriod(ctx context.Context, f SalePeriodFilter) ([]model.Sale, error)
	Create(ctx context.Context, sale model.Sale) (int64, error)
}
