package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type VehicleGormRepository struct {
	db *gorm.DB
}

func NewVehicleGormRepository(db *gorm.DB) *VehicleGormRepository {
	return &VehicleGormRepository{db: db}
}

func (r *VehicleGormRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	var items []model.Vehicle
	if err := r.db.WithContext(ctx).Order("brand asc").Order("name asc").Find(&items).Error; err != nil {
		return []model.Vehicle{}, err
	}
	return items, nil
}

func (r *VehicleGormRepository) FindByID(ctx context.Context, id int64) (model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.WithContext(ctx).First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Vehicle{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleGormRepository) Create(ctx context.Context, v model.Vehicle) (model.Vehicle, error) {
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		return model.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleGormRepository) Update(ctx context.Context, v model.Vehicle) error {
	res := r.db.WithContext(ctx).Model(&model.Vehicle{}).Where("id = ?", v.ID).Updates(map[string]interface{}{
		"name":       v.Name,
		"brand":      v.Brand,
		"model_year": v.ModelYear,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *VehicleGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Vehicle{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
