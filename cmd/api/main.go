package main

import (
	"context"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envは無くてもよい（コンテナでは環境変数で渡す）
	_ = godotenv.Load("../.env")

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.Supplier{},
		&model.Vehicle{},
		&model.Product{},
		&model.ProductVehicle{},
		&model.StockNotification{},
		&model.Customer{},
		&model.Seller{},
		&model.Sale{},
		&model.SaleItem{},
	); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	notificationRepo := infraRepo.NewNotificationGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	supplierRepo := infraRepo.NewSupplierGormRepository(gormDB)
	sellerRepo := infraRepo.NewSellerGormRepository(gormDB)
	vehicleRepo := infraRepo.NewVehicleGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, supplierRepo, vehicleRepo, log)
	stockUC := usecase.NewStockUsecase(txManager, productRepo, notificationRepo, log)
	saleUC := usecase.NewSaleUsecase(txManager, stockUC, log)
	customerUC := usecase.NewCustomerUsecase(customerRepo)
	supplierUC := usecase.NewSupplierUsecase(supplierRepo)
	sellerUC := usecase.NewSellerUsecase(sellerRepo)
	vehicleUC := usecase.NewVehicleUsecase(vehicleRepo)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	stockH := handler.NewStockHandler(stockUC)
	saleH := handler.NewSaleHandler(saleUC)
	customerH := handler.NewCustomerHandler(customerUC)
	supplierH := handler.NewSupplierHandler(supplierUC)
	sellerH := handler.NewSellerHandler(sellerUC)
	vehicleH := handler.NewVehicleHandler(vehicleUC)

	//低在庫の定期スキャン
	if cfg.StockScanInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.StockScanInterval)
			defer ticker.Stop()
			for range ticker.C {
				created, err := stockUC.ScanLowStock(context.Background())
				if err != nil {
					log.Error("low stock scan failed", zap.Error(err))
					continue
				}
				if created > 0 {
					log.Info("low stock scan", zap.Int("created", created))
				}
			}
		}()
	}

	//Server起動
	addr := ":" + cfg.Port
	log.Info("server starting", zap.String("addr", addr))
	if err := server.Start(addr, productH, stockH, saleH, customerH, supplierH, sellerH, vehicleH); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
