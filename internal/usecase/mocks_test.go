package usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ListByVehicleID(ctx context.Context, vehicleID int64) ([]model.Product, error) {
	args := m.Called(ctx, vehicleID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListLowStock(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) ReplaceCompatibleVehicles(ctx context.Context, productID int64, vehicleIDs []int64) error {
	args := m.Called(ctx, productID, vehicleIDs)
	return args.Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) AdjustStockIfEnough(ctx context.Context, productID int64, delta int64) (bool, error) {
	args := m.Called(ctx, productID, delta)
	return args.Bool(0), args.Error(1)
}

type NotificationRepoMock struct{ mock.Mock }

func (m *NotificationRepoMock) FindByID(ctx context.Context, id int64) (model.StockNotification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(model.StockNotification)
	return n, args.Error(1)
}

func (m *NotificationRepoMock) List(ctx context.Context, resolved *bool) ([]model.StockNotification, error) {
	args := m.Called(ctx, resolved)
	items, _ := args.Get(0).([]model.StockNotification)
	return items, args.Error(1)
}

func (m *NotificationRepoMock) FindOpenByProductID(ctx context.Context, productID int64) (model.StockNotification, bool, error) {
	args := m.Called(ctx, productID)
	n, _ := args.Get(0).(model.StockNotification)
	return n, args.Bool(1), args.Error(2)
}

func (m *NotificationRepoMock) Create(ctx context.Context, n model.StockNotification) (model.StockNotification, error) {
	args := m.Called(ctx, n)
	created, _ := args.Get(0).(model.StockNotification)
	return created, args.Error(1)
}

func (m *NotificationRepoMock) Resolve(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *NotificationRepoMock) ResolveOpenByProductID(ctx context.Context, productID int64, at time.Time) (int64, error) {
	args := m.Called(ctx, productID, at)
	return args.Get(0).(int64), args.Error(1)
}

type SaleRepoMock struct{ mock.Mock }

func (m *SaleRepoMock) FindByID(ctx context.Context, saleID int64) (model.Sale, error) {
	args := m.Called(ctx, saleID)
	s, _ := args.Get(0).(model.Sale)
	return s, args.Error(1)
}

func (m *SaleRepoMock) FindByIdempotencyKey(ctx context.Context, key string) (model.Sale, bool, error) {
	args := m.Called(ctx, key)
	s, _ := args.Get(0).(model.Sale)
	return s, args.Bool(1), args.Error(2)
}

func (m *SaleRepoMock) ListByPeriod(ctx context.Context, f repo.SalePeriodFilter) ([]model.Sale, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Sale)
	return items, args.Error(1)
}

func (m *SaleRepoMock) Create(ctx context.Context, sale model.Sale) (int64, error) {
	args := m.Called(ctx, sale)
	return args.Get(0).(int64), args.Error(1)
}

type SaleItemRepoMock struct{ mock.Mock }

func (m *SaleItemRepoMock) CreateBulk(ctx context.Context, saleID int64, items []model.SaleItem) error {
	args := m.Called(ctx, saleID, items)
	return args.Error(0)
}

func (m *SaleItemRepoMock) ListBySaleID(ctx context.Context, saleID int64) ([]model.SaleItem, error) {
	args := m.Called(ctx, saleID)
	items, _ := args.Get(0).([]model.SaleItem)
	return items, args.Error(1)
}

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Error(1)
}

func (m *CustomerRepoMock) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) FindByDocument(ctx context.Context, document string) (model.Customer, error) {
	args := m.Called(ctx, document)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Customer)
	return created, args.Error(1)
}

func (m *CustomerRepoMock) Update(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type SellerRepoMock struct{ mock.Mock }

func (m *SellerRepoMock) List(ctx context.Context) ([]model.Seller, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Seller)
	return items, args.Error(1)
}

func (m *SellerRepoMock) FindByID(ctx context.Context, id int64) (model.Seller, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Seller)
	return s, args.Error(1)
}

func (m *SellerRepoMock) Create(ctx context.Context, s model.Seller) (model.Seller, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Seller)
	return created, args.Error(1)
}

func (m *SellerRepoMock) Update(ctx context.Context, s model.Seller) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SellerRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type SupplierRepoMock struct{ mock.Mock }

func (m *SupplierRepoMock) List(ctx context.Context) ([]model.Supplier, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Supplier)
	return items, args.Error(1)
}

func (m *SupplierRepoMock) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Supplier)
	return s, args.Error(1)
}

func (m *SupplierRepoMock) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Supplier)
	return created, args.Error(1)
}

func (m *SupplierRepoMock) Update(ctx context.Context, s model.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SupplierRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type VehicleRepoMock struct{ mock.Mock }

func (m *VehicleRepoMock) List(ctx context.Context) ([]model.Vehicle, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Vehicle)
	return items, args.Error(1)
}

func (m *VehicleRepoMock) FindByID(ctx context.Context, id int64) (model.Vehicle, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(model.Vehicle)
	return v, args.Error(1)
}

func (m *VehicleRepoMock) Create(ctx context.Context, v model.Vehicle) (model.Vehicle, error) {
	args := m.Called(ctx, v)
	created, _ := args.Get(0).(model.Vehicle)
	return created, args.Error(1)
}

func (m *VehicleRepoMock) Update(ctx context.Context, v model.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *VehicleRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =====================
// Tx偽物（Txなしで同じリポジトリを返す）
// =====================

type fakeTxRepos struct {
	products      *ProductRepoMock
	inventory     *InventoryRepoMock
	notifications *NotificationRepoMock
	sales         *SaleRepoMock
	saleItems     *SaleItemRepoMock
	customers     *CustomerRepoMock
	sellers       *SellerRepoMock
}

func newFakeTxRepos() *fakeTxRepos {
	return &fakeTxRepos{
		products:      new(ProductRepoMock),
		inventory:     new(InventoryRepoMock),
		notifications: new(NotificationRepoMock),
		sales:         new(SaleRepoMock),
		saleItems:     new(SaleItemRepoMock),
		customers:     new(CustomerRepoMock),
		sellers:       new(SellerRepoMock),
	}
}

func (f *fakeTxRepos) Products() repo.ProductRepository           { return f.products }
func (f *fakeTxRepos) Inventory() repo.InventoryRepository        { return f.inventory }
func (f *fakeTxRepos) Notifications() repo.NotificationRepository { return f.notifications }
func (f *fakeTxRepos) Sales() repo.SaleRepository                 { return f.sales }
func (f *fakeTxRepos) SaleItems() repo.SaleItemRepository         { return f.saleItems }
func (f *fakeTxRepos) Customers() repo.CustomerRepository         { return f.customers }
func (f *fakeTxRepos) Sellers() repo.SellerRepository             { return f.sellers }

type fakeTxManager struct {
	repos *fakeTxRepos
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(f.repos)
}

// =====================
// Helpers
// =====================

func assertHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, status, he.Status)
		assert.Contains(t, he.Message, message)
	}
}
