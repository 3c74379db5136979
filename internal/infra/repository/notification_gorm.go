package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) FindByID(ctx context.Context, id int64) (model.StockNotification, error) {
	var n model.StockNotification
	err := r.db.WithContext(ctx).First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.StockNotification{}, repo.ErrNotFound
	}
	if err != nil {
		return model.StockNotification{}, err
	}
	return n, nil
}

func (r *NotificationGormRepository) List(ctx context.Context, resolved *bool) ([]model.StockNotification, error) {
	q := r.db.WithContext(ctx).Model(&model.StockNotification{})
	if resolved != nil {
		q = q.Where("resolved = ?", *resolved)
	}

	var items []model.StockNotification
	if err := q.Order("created_at desc").Order("id desc").Find(&items).Error; err != nil {
		return []model.StockNotification{}, err
	}
	return items, nil
}

// 未解決の通知を1件だけ返す
func (r *NotificationGormRepository) FindOpenByProductID(ctx context.Context, productID int64) (model.StockNotification, bool, error) {
	var n model.StockNotification
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND resolved = ?", productID, false).
		First(&n).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.StockNotification{}, false, nil
	}
	if err != nil {
		return model.StockNotification{}, false, err
	}
	return n, true, nil
}

func (r *NotificationGormRepository) Create(ctx context.Context, n model.StockNotification) (model.StockNotification, error) {
	if err := r.db.WithContext(ctx).Create(&n).Error; err != nil {
		return model.StockNotification{}, err
	}
	return n, nil
}

func (r *NotificationGormRepository) Resolve(ctx context.Context, id int64, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.StockNotification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"resolved":    true,
			"resolved_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品の未解決通知をまとめて解決する
func (r *NotificationGormRepository) ResolveOpenByProductID(ctx context.Context, productID int64, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.StockNotification{}).
		Where("product_id = ? AND resolved = ?", productID, false).
		Updates(map[string]interface{}{
			"resolved":    true,
			"resolved_at": at,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
