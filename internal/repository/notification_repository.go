package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type NotificationRepository interface {
	FindByID(ctx context.Context, id int64) (model.StockNotification, error)

	// resolved=nil なら全件
	List(ctx context.Context, resolved *bool) ([]model.StockNotification, error)

	// 未解決の通知（1商品につき最大1件）
	FindOpenByProductID(ctx context.Context, productID int64) (model.StockNotification, bool, error)

	Create(ctx context.Context, n model.StockNotification) (model.StockNotification, error)
	Resolve(ctx context.Context, id int64, at time.Time) error
	ResolveOpenByProductID(ctx context.Context, productID int64, at time.Time) (int64, error)
}
