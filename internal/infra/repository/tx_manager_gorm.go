package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products      repo.ProductRepository
	inventory     repo.InventoryRepository
	notifications repo.NotificationRepository
	sales         repo.SaleRepository
	saleItems     repo.SaleItemRepository
	customers     repo.CustomerRepository
	sellers       repo.SellerRepository
}

func (r *txReposGorm) Products() repo.ProductRepository           { return r.products }
func (r *txReposGorm) Inventory() repo.InventoryRepository        { return r.inventory }
func (r *txReposGorm) Notifications() repo.NotificationRepository { return r.notifications }
func (r *txReposGorm) Sales() repo.SaleRepository                 { return r.sales }
func (r *txReposGorm) SaleItems() repo.SaleItemRepository         { return r.saleItems }
func (r *txReposGorm) Customers() repo.CustomerRepository         { return r.customers }
func (r *txReposGorm) Sellers() repo.SellerRepository             { return r.sellers }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:      NewProductGormRepository(tx),
			inventory:     NewInventoryGormRepository(tx),
			notifications: NewNotificationGormRepository(tx),
			sales:         NewSaleGormRepository(tx),
			saleItems:     NewSaleItemGormRepository(tx),
			customers:     NewCustomerGormRepository(tx),
			sellers:       NewSellerGormRepository(tx),
		}
		return fn(r)
	})
}
