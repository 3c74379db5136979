package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"go.uber.org/zap"
)

type StockUsecase struct {
	tx            repo.TransactionManager
	products      repo.ProductRepository
	notifications repo.NotificationRepository
	log           *zap.Logger
}

// DI
func NewStockUsecase(
	tx repo.TransactionManager,
	products repo.ProductRepository,
	notifications repo.NotificationRepository,
	log *zap.Logger,
) *StockUsecase {
	return &StockUsecase{
		tx:            tx,
		products:      products,
		notifications: notifications,
		log:           log,
	}
}

// AdjustStock は在庫を加減算する。deltaは正（入荷）か負（出荷）。
// 結果が負になる調整は適用せず、在庫はそのまま。
func (u *StockUsecase) AdjustStock(ctx context.Context, productID int64, delta int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var out model.Product

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, productID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			u.log.Error("load product failed", zap.Int64("product_id", productID), zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		updated, err := u.applyAdjustment(ctx, r, p, delta)
		if err != nil {
			return err
		}
		out = updated
		return nil
	})

	if err != nil {
		return model.Product{}, err
	}
	return out, nil
}

// applyAdjustment は加減算としきい値ルールを適用する。Txの中で呼ぶこと。
func (u *StockUsecase) applyAdjustment(ctx context.Context, r repo.TxRepos, p model.Product, delta int64) (model.Product, error) {
	ok, err := r.Inventory().AdjustStockIfEnough(ctx, p.ID, delta)
	if err != nil {
		u.log.Error("adjust stock failed", zap.Int64("product_id", p.ID), zap.Int64("delta", delta), zap.Error(err))
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !ok {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock cannot be negative")
	}

	// 更新後の値を読み直す（行ロック保持中なので確定値）
	p, err = r.Products().FindByID(ctx, p.ID)
	if err != nil {
		u.log.Error("reload product failed", zap.Int64("product_id", p.ID), zap.Error(err))
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//しきい値ルール
	if p.Stock <= p.MinStock {
		if _, err := u.ensureOpenNotification(ctx, r, p); err != nil {
			return model.Product{}, err
		}
	} else {
		if _, err := r.Notifications().ResolveOpenByProductID(ctx, p.ID, time.Now()); err != nil {
			u.log.Error("resolve notifications failed", zap.Int64("product_id", p.ID), zap.Error(err))
			return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	return p, nil
}

// ensureOpenNotification は未解決通知をちょうど1件にする。
// 既に未解決があれば何もしない（スナップショットも更新しない）。
func (u *StockUsecase) ensureOpenNotification(ctx context.Context, r repo.TxRepos, p model.Product) (bool, error) {
	_, found, err := r.Notifications().FindOpenByProductID(ctx, p.ID)
	if err != nil {
		u.log.Error("find open notification failed", zap.Int64("product_id", p.ID), zap.Error(err))
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if found {
		return false, nil
	}

	n := model.StockNotification{
		ProductID:     p.ID,
		StockSnapshot: p.Stock,
		CreatedAt:     time.Now(),
	}
	if _, err := r.Notifications().Create(ctx, n); err != nil {
		u.log.Error("create notification failed", zap.Int64("product_id", p.ID), zap.Error(err))
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Warn("low stock notification created",
		zap.Int64("product_id", p.ID),
		zap.String("product_name", p.Name),
		zap.Int64("stock", p.Stock),
		zap.Int64("min_stock", p.MinStock),
	)
	return true, nil
}

// ScanLowStock は在庫が最低数量以下の全商品を走査して、
// 足りない未解決通知を作る。作成した件数を返す。
func (u *StockUsecase) ScanLowStock(ctx context.Context) (int, error) {
	created := 0

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		products, err := r.Products().ListLowStock(ctx)
		if err != nil {
			u.log.Error("list low stock products failed", zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		for _, p := range products {
			ok, err := u.ensureOpenNotification(ctx, r, p)
			if err != nil {
				return err
			}
			if ok {
				created++
			}
		}
		return nil
	})

	if err != nil {
		return 0, err
	}
	return created, nil
}

type NotificationOutput struct {
	ID            int64      `json:"id"`
	ProductID     int64      `json:"product_id"`
	ProductName   string     `json:"product_name"`
	StockSnapshot int64      `json:"stock_snapshot"`
	MinStock      int64      `json:"min_stock"`
	Resolved      bool       `json:"resolved"`
	CreatedAt     time.Time  `json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

// ListNotifications は通知一覧。商品名は明示的に引き当てる。
func (u *StockUsecase) ListNotifications(ctx context.Context, resolved *bool) ([]NotificationOutput, error) {
	notifs, err := u.notifications.List(ctx, resolved)
	if err != nil {
		u.log.Error("list notifications failed", zap.Error(err))
		return []NotificationOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.products.List(ctx)
	if err != nil {
		u.log.Error("list products failed", zap.Error(err))
		return []NotificationOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	outs := make([]NotificationOutput, 0, len(notifs))
	for _, n := range notifs {
		name := "unknown"
		var minStock int64
		if p, ok := byID[n.ProductID]; ok {
			name = p.Name
			minStock = p.MinStock
		}
		outs = append(outs, NotificationOutput{
			ID:            n.ID,
			ProductID:     n.ProductID,
			ProductName:   name,
			StockSnapshot: n.StockSnapshot,
			MinStock:      minStock,
			Resolved:      n.Resolved,
			CreatedAt:     n.CreatedAt,
			ResolvedAt:    n.ResolvedAt,
		})
	}
	return outs, nil
}

// ResolveNotification はオペレーターによる明示的な解決。
func (u *StockUsecase) ResolveNotification(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	_, err := u.notifications.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "notification not found")
	}
	if err != nil {
		u.log.Error("load notification failed", zap.Int64("notification_id", id), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.notifications.Resolve(ctx, id, time.Now()); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "notification not found")
		}
		u.log.Error("resolve notification failed", zap.Int64("notification_id", id), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
