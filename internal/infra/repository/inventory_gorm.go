package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 結果が負にならないときだけ加減算する。
// 読み取り→書き込みの競合を避けるため条件付きUPDATE一発で行う。
func (r *InventoryGormRepository) AdjustStockIfEnough(ctx context.Context, productID int64, delta int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND stock + ? >= 0", productID, delta).
		Update("stock", gorm.Expr("stock + ?", delta))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}
