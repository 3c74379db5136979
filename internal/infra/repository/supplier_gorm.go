package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type SupplierGormRepository struct {
	db *gorm.DB
}

func NewSupplierGormRepository(db *gorm.DB) *SupplierGormRepository {
	return &SupplierGormRepository{db: db}
}

func (r *SupplierGormRepository) List(ctx context.Context) ([]model.Supplier, error) {
	var items []model.Supplier
	if err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return []model.Supplier{}, err
	}
	return items, nil
}

func (r *SupplierGormRepository) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Supplier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) Update(ctx context.Context, s model.Supplier) error {
	res := r.db.WithContext(ctx).Model(&model.Supplier{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"name":    s.Name,
		"contact": s.Contact,
		"phone":   s.Phone,
		"email":   s.Email,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SupplierGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Supplier{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
