package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductUsecase struct {
	products  repo.ProductRepository
	suppliers repo.SupplierRepository
	vehicles  repo.VehicleRepository
	log       *zap.Logger
}

// DI
func NewProductUsecase(
	products repo.ProductRepository,
	suppliers repo.SupplierRepository,
	vehicles repo.VehicleRepository,
	log *zap.Logger,
) *ProductUsecase {
	return &ProductUsecase{
		products:  products,
		suppliers: suppliers,
		vehicles:  vehicles,
		log:       log,
	}
}

type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
	MinStock    int64
	Image       string
	SupplierID  int64
	VehicleIDs  []int64
}

func (u *ProductUsecase) validate(in ProductInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if len(name) > 100 {
		return NewHTTPError(http.StatusBadRequest, "name too long")
	}
	if len(in.Description) > 500 {
		return NewHTTPError(http.StatusBadRequest, "description too long")
	}
	if !in.Price.IsPositive() {
		return NewHTTPError(http.StatusBadRequest, "price must be positive")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if in.MinStock < 1 {
		return NewHTTPError(http.StatusBadRequest, "min_stock must be >= 1")
	}
	if in.SupplierID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "supplier required")
	}
	return nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.products.List(ctx)
	if err != nil {
		u.log.Error("list products failed", zap.Error(err))
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.log.Error("load product failed", zap.Int64("product_id", productID), zap.Error(err))
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// ListByVehicle は車両に適合する商品を返す。
func (u *ProductUsecase) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.Product, error) {
	if vehicleID <= 0 {
		return []model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid vehicle id")
	}

	if _, err := u.vehicles.FindByID(ctx, vehicleID); err != nil {
		if err == repo.ErrNotFound {
			return []model.Product{}, NewHTTPError(http.StatusNotFound, "vehicle not found")
		}
		u.log.Error("load vehicle failed", zap.Int64("vehicle_id", vehicleID), zap.Error(err))
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.products.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		u.log.Error("list products by vehicle failed", zap.Int64("vehicle_id", vehicleID), zap.Error(err))
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in ProductInput) (int64, error) {
	if err := u.validate(in); err != nil {
		return 0, err
	}

	//仕入先の存在確認
	if _, err := u.suppliers.FindByID(ctx, in.SupplierID); err != nil {
		if err == repo.ErrNotFound {
			return 0, NewHTTPError(http.StatusNotFound, "supplier not found")
		}
		u.log.Error("load supplier failed", zap.Int64("supplier_id", in.SupplierID), zap.Error(err))
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.products.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		Image:       in.Image,
		SupplierID:  in.SupplierID,
	})
	if err != nil {
		u.log.Error("create product failed", zap.Error(err))
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if len(in.VehicleIDs) > 0 {
		if err := u.products.ReplaceCompatibleVehicles(ctx, p.ID, in.VehicleIDs); err != nil {
			u.log.Error("set compatible vehicles failed", zap.Int64("product_id", p.ID), zap.Error(err))
			return 0, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return p.ID, nil
}

// UpdateProduct は商品マスタを更新する。在庫数はここでは触らない
// （在庫の増減はStockUsecaseだけが行う）。
func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in ProductInput) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := u.validate(in); err != nil {
		return err
	}

	if _, err := u.suppliers.FindByID(ctx, in.SupplierID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "supplier not found")
		}
		u.log.Error("load supplier failed", zap.Int64("supplier_id", in.SupplierID), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err := u.products.Update(ctx, model.Product{
		ID:          productID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		MinStock:    in.MinStock,
		Image:       in.Image,
		SupplierID:  in.SupplierID,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.log.Error("update product failed", zap.Int64("product_id", productID), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.products.ReplaceCompatibleVehicles(ctx, productID, in.VehicleIDs); err != nil {
		u.log.Error("set compatible vehicles failed", zap.Int64("product_id", productID), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.products.Delete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.log.Error("delete product failed", zap.Int64("product_id", productID), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
