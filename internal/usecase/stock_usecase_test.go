package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newStockUsecase(tx *fakeTxRepos, products *ProductRepoMock, notifications *NotificationRepoMock) *usecase.StockUsecase {
	return usecase.NewStockUsecase(&fakeTxManager{repos: tx}, products, notifications, zap.NewNop())
}

// =====================
// AdjustStock
// =====================

func TestStockUsecase_AdjustStock_AboveThreshold_NoNotification(t *testing.T) {
	ctx := context.Background()
	tx := newFakeTxRepos()
	uc := newStockUsecase(tx, new(ProductRepoMock), new(NotificationRepoMock))

	before := model.Product{ID: 1, Name: "oil filter", Stock: 10, MinStock: 5}
	after := model.Product{ID: 1, Name: "oil filter", Stock: 7, MinStock: 5}

	tx.products.On("FindByID", mock.Anything, int64(1)).Return(before, nil).Once()
	tx.inventory.On("AdjustStockIfEnough", mock.Anything, int64(1), int64(-3)).Return(true, nil)
	tx.products.On("FindByID", mock.Anything, int64(1)).Return(after, nil).Once()
	tx.notifications.On("ResolveOpenByProductID", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).Return(int64(0), nil)

	out, err := uc.AdjustStock(ctx, 1, -3)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.Stock)

	tx.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	tx.inventory.AssertExpectations(t)
}

func TestStockUsecase_AdjustStock_CrossesThreshold_CreatesNotification(t *testing.T) {
	ctx := context.Background()
	tx := newFakeTxRepos()
	uc := newStockUsecase(tx, new(ProductRepoMock), new(NotificationRepoMock))

	before := model.Product{ID: 1, Name: "oil filter", Stock: 7, MinStock: 5}
	after := model.Product{ID: 1, Name: "oil filter", Stock: 4, MinStock: 5}

	tx.products.On("FindByID", mock.Anything, int64(1)).Return(before, nil).Once()
	tx.inventory.On("AdjustStockIfEnough", mock.Anything, int64(1), int64(-3)).Return(true, nil)
	tx.products.On("FindByID", mock.Anything, int64(1)).Return(after, nil).Once()
	tx.notifications.On("FindOpenByProductID", mock.Anything, int64(1)).Return(model.StockNotification{}, false, nil)
	tx.notifications.On("Create", mock.Anything, mock.MatchedBy(func(n model.StockNotification) bool {
		return n.ProductID == 1 && n.StockSnapshot == 4 && !n.Resolved
	})).Return(model.StockNotification{ID: 10, ProductID: 1, StockSnapshot: 4}, nil)

	out, err := uc.AdjustStock(ctx, 1, -3)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), out.Stock)

	tx.notifications.AssertExpectations(t)
}

func TestStockUsecase_AdjustStock_OpenNotificationExists_NotDuplicated(t *testing.T) {
	ctx := context.Background()
	tx := newFakeTxRepos()
	uc := newStockUsecase(tx, new(ProductRepoMock), new(NotificationRepoMock))

	before := model.Product{ID: 1, Stock: 4, MinStock: 5}
	after := model.Product{ID: 1, Stock: 3, MinStock: 5}

	tx.products.On("FindByID", mock.Anything, int64(1)).Return(before, nil).Once()
	tx.inventory.On("AdjustStockIfEnough", mock.Anything, int64(1), int64(-1)).Return(true, nil)
	tx.products.On("FindByID", mock.Anything, int64(1)).Return(after, nil).Once()

	// 既存の未解決通知。スナップショットは更新しない。
	existing := model.StockNotification{ID: 10, ProductID: 1, StockSnapshot: 4}
	tx.notifications.On("FindOpenByProductID", mock.Anything, int64(1)).Return(existing, true, nil)

	_, err := uc.AdjustStock(ctx, 1, -1)
	assert.NoError(t, err)

	tx.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStockUsecase_AdjustStock_Replenish_ResolvesOpenNotifications(t *testing.T) {
	ctx := context.Background()
	tx := newFakeTxRepos()
	uc := newStockUsecase(tx, new(ProductRepoMock), new(NotificationRepoMock))

	before := model.Product{ID: 1, Stock: 4, MinStock: 5}
	after := model.Product{ID: 1, Stock: 14, MinStock: 5}

	tx.products.On("FindByID", mock.Anything, int64(1)).Return(before, nil).Once()
	tx.inventory.On("AdjustStockIfEnough", mock.Anything, int64(1), int64(10)).Return(true, nil)
	tx.products.On("FindByID", mock.Anything, int64(1)).Return(after, nil).Once()
	tx.notifications.On("ResolveOpenByProductID", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).Return(int64(1), nil)

	out, err := uc.AdjustStock(ctx, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(14), out.Stock)

	tx.notifications.AssertExpectations(t)
}

func TestStockUsecase_AdjustStock_WouldGoNegative_Rejected(t *testing.T) {
	ctx := context.Background()
	tx := newFakeTxRepos()
	uc := newStockUsecase(tx, new(ProductRepoMock), new(NotificationRepoMock))

	before := model.Product{ID: 1, Stock: 10, MinStock: 5}

	tx.products.On("FindByID", mock.Anything, int64(1)).Return(before, nil).Once()
	tx.inventory.On("AdjustStockIfEnough", mock.Anything, int64(1), int64(-15)).Return(false, nil)

	_, err := uc.AdjustStock(ctx, 1, -15)
	assertHTTPError(t, err, http.StatusBadRequest, "stock cannot be negative")

	// 在庫はそのまま、通知にも触らない
	tx.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	tx.notifications.AssertNotCalled(t, "ResolveOpenByProductID", mock.Anything, mock.Anything, mock.Anything)
}

func TestStockUsecase_AdjustStock_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	tx := newFakeTxRepos()
	uc := newStockUsecase(tx, new(ProductRepoMock), new(NotificationRepoMock))

	tx.products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AdjustStock(ctx, 99, 5)
	assertHTTPError(t, err, http.StatusNotFound, "product not found")
}

func TestStockUsecase_AdjustStock_InvalidProductID(t *testing.T) {
	tx := newFakeTxRepos()
	uc := newStockUsecase(tx, new(ProductRepoMock), new(NotificationRepoMock))

	_, err := uc.AdjustStock(context.Background(), 0, 5)
	assertHTTPError(t, err, http.StatusBadRequest, "invalid product id")
}

// =====================
// ScanLowStock
// =====================

func TestStockUsecase_ScanLowStock_CountsOnlyCreated(t *testing.T) {
	ctx := context.Background()
	tx := newFakeTxRepos()
	uc := newStockUsecase(tx, new(ProductRepoMock), new(NotificationRepoMock))

	low := []model.Product{
		{ID: 1, Name: "brake pad", Stock: 2, MinStock: 5},
		{ID: 2, Name: "spark plug", Stock: 0, MinStock: 3},
	}
	tx.products.On("ListLowStock", mock.Anything).Return(low, nil)

	// 1は未解決あり、2は無し
	tx.notifications.On("FindOpenByProductID", mock.Anything, int64(1)).Return(model.StockNotification{ID: 7, ProductID: 1}, true, nil)
	tx.notifications.On("FindOpenByProductID", mock.Anything, int64(2)).Return(model.StockNotification{}, false, nil)
	tx.notifications.On("Create", mock.Anything, mock.MatchedBy(func(n model.StockNotification) bool {
		return n.ProductID == 2 && n.StockSnapshot == 0
	})).Return(model.StockNotification{ID: 8, ProductID: 2}, nil)

	created, err := uc.ScanLowStock(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, created)

	tx.notifications.AssertExpectations(t)
}

func TestStockUsecase_ScanLowStock_Empty(t *testing.T) {
	tx := newFakeTxRepos()
	uc := newStockUsecase(tx, new(ProductRepoMock), new(NotificationRepoMock))

	tx.products.On("ListLowStock", mock.Anything).Return([]model.Product{}, nil)

	created, err := uc.ScanLowStock(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, created)
}

// =====================
// Notifications
// =====================

func TestStockUsecase_ListNotifications_ResolvesProductNames(t *testing.T) {
	ctx := context.Background()
	tx := newFakeTxRepos()
	products := new(ProductRepoMock)
	notifications := new(NotificationRepoMock)
	uc := newStockUsecase(tx, products, notifications)

	notifs := []model.StockNotification{
		{ID: 1, ProductID: 10, StockSnapshot: 2},
		{ID: 2, ProductID: 99, StockSnapshot: 0},
	}
	notifications.On("List", mock.Anything, (*bool)(nil)).Return(notifs, nil)
	products.On("List", mock.Anything).Return([]model.Product{
		{ID: 10, Name: "air filter", MinStock: 5},
	}, nil)

	outs, err := uc.ListNotifications(ctx, nil)
	assert.NoError(t, err)
	assert.Len(t, outs, 2)
	assert.Equal(t, "air filter", outs[0].ProductName)
	assert.Equal(t, int64(5), outs[0].MinStock)
	// 消えた商品はunknown
	assert.Equal(t, "unknown", outs[1].ProductName)
}

func TestStockUsecase_ResolveNotification_Success(t *testing.T) {
	ctx := context.Background()
	tx := newFakeTxRepos()
	notifications := new(NotificationRepoMock)
	uc := newStockUsecase(tx, new(ProductRepoMock), notifications)

	notifications.On("FindByID", mock.Anything, int64(5)).Return(model.StockNotification{ID: 5, ProductID: 1}, nil)
	notifications.On("Resolve", mock.Anything, int64(5), mock.AnythingOfType("time.Time")).Return(nil)

	err := uc.ResolveNotification(ctx, 5)
	assert.NoError(t, err)
	notifications.AssertExpectations(t)
}

func TestStockUsecase_ResolveNotification_NotFound(t *testing.T) {
	tx := newFakeTxRepos()
	notifications := new(NotificationRepoMock)
	uc := newStockUsecase(tx, new(ProductRepoMock), notifications)

	notifications.On("FindByID", mock.Anything, int64(404)).Return(model.StockNotification{}, repo.ErrNotFound)

	err := uc.ResolveNotification(context.Background(), 404)
	assertHTTPError(t, err, http.StatusNotFound, "notification not found")
	notifications.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
}
