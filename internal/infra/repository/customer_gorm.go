package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgresの一意制約違反
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) List(ctx context.Context) ([]model.Customer, error) {
	var items []model.Customer
	if err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return []model.Customer{}, err
	}
	return items, nil
}

func (r *CustomerGormRepository) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// 書類番号（CPF/CNPJ相当）で引く
func (r *CustomerGormRepository) FindByDocument(ctx context.Context, document string) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("document = ?", document).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		if isUniqueViolation(err) {
			return model.Customer{}, repo.ErrDuplicate
		}
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) Update(ctx context.Context, c model.Customer) error {
	res := r.db.WithContext(ctx).Model(&model.Customer{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name":     c.Name,
		"document": c.Document,
		"email":    c.Email,
		"phone":    c.Phone,
	})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return repo.ErrDuplicate
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CustomerGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Customer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
