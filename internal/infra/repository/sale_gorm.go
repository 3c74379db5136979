package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type SaleGormRepository struct {
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

func (r *SaleGormRepository) FindByID(ctx context.Context, saleID int64) (model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Where("id = ?", saleID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Sale{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Sale{}, err
	}
	return s, nil
}

func (r *SaleGormRepository) FindByIdempotencyKey(ctx context.Context, key string) (model.Sale, bool, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Where("idempotency_key = ?", key).
		First(&s).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Sale{}, false, nil
	}
	if err != nil {
		return model.Sale{}, false, err
	}
	return s, true, nil
}

//期間絞り込み
func (r *SaleGormRepository) ListByPeriod(ctx context.Context, f repo.SalePeriodFilter) ([]model.Sale, error) {
	var items []model.Sale
	err := r.db.WithContext(ctx).
		Where("sold_at >= ? AND sold_at <= ?", f.From, f.To).
		Order("sold_at desc").
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Sale{}, err
	}
	return items, nil
}

func (r *SaleGormRepository) Create(ctx context.Context, sale model.Sale) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&sale).Error; err != nil {
		// 冪等キーの一意制約。同時リクエストの負け側がここに来る。
		if isUniqueViolation(err) {
			return 0, repo.ErrDuplicate
		}
		return 0, err
	}
	return sale.ID, nil
}
