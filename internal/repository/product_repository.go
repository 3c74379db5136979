package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一意制約違反（書類番号・冪等キーなど）
var ErrDuplicate = errors.New("duplicate")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	ListByVehicleID(ctx context.Context, vehicleID int64) ([]model.Product, error)

	// 在庫が最低数量以下の商品
	ListLowStock(ctx context.Context) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error

	// 適合車両を入れ替える（全置換）
	ReplaceCompatibleVehicles(ctx context.Context, productID int64, vehicleIDs []int64) error
}
