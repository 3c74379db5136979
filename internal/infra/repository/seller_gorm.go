package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type SellerGormRepository struct {
	db *gorm.DB
}

func NewSellerGormRepository(db *gorm.DB) *SellerGormRepository {
	return &SellerGormRepository{db: db}
}

func (r *SellerGormRepository) List(ctx context.Context) ([]model.Seller, error) {
	var items []model.Seller
	if err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return []model.Seller{}, err
	}
	return items, nil
}

func (r *SellerGormRepository) FindByID(ctx context.Context, id int64) (model.Seller, error) {
	var s model.Seller
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Seller{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Seller{}, err
	}
	return s, nil
}

func (r *SellerGormRepository) Create(ctx context.Context, s model.Seller) (model.Seller, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Seller{}, err
	}
	return s, nil
}

func (r *SellerGormRepository) Update(ctx context.Context, s model.Seller) error {
	res := r.db.WithContext(ctx).Model(&model.Seller{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"name":  s.Name,
		"email": s.Email,
		"phone": s.Phone,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SellerGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Seller{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
