package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("name asc").Order("id asc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 車両に適合する商品。対応表を明示的に引く。
func (r *ProductGormRepository) ListByVehicleID(ctx context.Context, vehicleID int64) ([]model.Product, error) {
	sub := r.db.Model(&model.ProductVehicle{}).
		Select("product_id").
		Where("vehicle_id = ?", vehicleID)

	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("id IN (?)", sub).
		Order("name asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 在庫が最低数量以下の商品
func (r *ProductGormRepository) ListLowStock(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("stock <= min_stock").
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の更新
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"min_stock":   p.MinStock,
		"image":       p.Image,
		"supplier_id": p.SupplierID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 適合車両の全置換
func (r *ProductGormRepository) ReplaceCompatibleVehicles(ctx context.Context, productID int64, vehicleIDs []int64) error {
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductVehicle{}).Error; err != nil {
		return err
	}
	if len(vehicleIDs) == 0 {
		return nil
	}

	rows := make([]model.ProductVehicle, 0, len(vehicleIDs))
	for _, vid := range vehicleIDs {
		rows = append(rows, model.ProductVehicle{ProductID: productID, VehicleID: vid})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
