package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SaleUsecase struct {
	tx    repo.TransactionManager
	stock *StockUsecase
	log   *zap.Logger
}

func NewSaleUsecase(tx repo.TransactionManager, stock *StockUsecase, log *zap.Logger) *SaleUsecase {
	return &SaleUsecase{tx: tx, stock: stock, log: log}
}

type SaleItemInput struct {
	ProductID int64
	Quantity  int64
	// 販売時点の単価。商品マスタの現在価格からは引き直さない。
	UnitPrice decimal.Decimal
}

type RegisterSaleInput struct {
	CustomerID     int64
	SellerID       int64
	IdempotencyKey string
	Items          []SaleItemInput
}

type SaleItemOutput struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type SaleOutput struct {
	ID           int64            `json:"id"`
	CustomerID   int64            `json:"customer_id"`
	CustomerName string           `json:"customer_name,omitempty"`
	SellerID     int64            `json:"seller_id"`
	SellerName   string           `json:"seller_name,omitempty"`
	Total        decimal.Decimal  `json:"total"`
	SoldAt       time.Time        `json:"sold_at"`
	Items        []SaleItemOutput `json:"items,omitempty"`
}

// RegisterSale は販売を登録し、明細ごとに在庫を減らす。
// 全体を1トランザクションで行う。途中の明細で在庫が足りなければ
// それまでの減算も含めて全部ロールバックする。
func (u *SaleUsecase) RegisterSale(ctx context.Context, in RegisterSaleInput) (SaleOutput, error) {
	if in.CustomerID <= 0 {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid customer_id")
	}
	if in.SellerID <= 0 {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid seller_id")
	}
	if len(in.Items) == 0 {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "at least one item required")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		if it.Quantity < 1 {
			return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
		}
		if !it.UnitPrice.IsPositive() {
			return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "unit price must be positive")
		}
	}
	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" || len(key) > 255 {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotency_key")
	}

	var out SaleOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 同じキーなら同じ結果
		existing, found, err := r.Sales().FindByIdempotencyKey(ctx, key)
		if err != nil {
			u.log.Error("find sale by idempotency key failed", zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if found {
			out, err = u.toSaleOutput(ctx, r, existing)
			return err
		}

		customer, err := r.Customers().FindByID(ctx, in.CustomerID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "customer not found")
		}
		if err != nil {
			u.log.Error("load customer failed", zap.Int64("customer_id", in.CustomerID), zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		seller, err := r.Sellers().FindByID(ctx, in.SellerID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "seller not found")
		}
		if err != nil {
			u.log.Error("load seller failed", zap.Int64("seller_id", in.SellerID), zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		soldAt := time.Now()
		total := decimal.Zero
		saleItems := make([]model.SaleItem, 0, len(in.Items))
		itemOuts := make([]SaleItemOutput, 0, len(in.Items))

		for _, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "product not found")
			}
			if err != nil {
				u.log.Error("load product failed", zap.Int64("product_id", it.ProductID), zap.Error(err))
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			// 在庫減算としきい値ルール。失敗はそのまま返す。
			if _, err := u.stock.applyAdjustment(ctx, r, p, -it.Quantity); err != nil {
				return err
			}

			subtotal := it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
			total = total.Add(subtotal)

			saleItems = append(saleItems, model.SaleItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
				Subtotal:  subtotal,
				CreatedAt: soldAt,
			})
			itemOuts = append(itemOuts, SaleItemOutput{
				ProductID: it.ProductID,
				Name:      p.Name,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
				Subtotal:  subtotal,
			})
		}

		saleID, err := r.Sales().Create(ctx, model.Sale{
			CustomerID:     in.CustomerID,
			SellerID:       in.SellerID,
			Total:          total,
			IdempotencyKey: key,
			SoldAt:         soldAt,
			CreatedAt:      soldAt,
		})
		if err == repo.ErrDuplicate {
			// 同じキーの同時リクエストに負けた
			return NewHTTPError(http.StatusConflict, "sale already registered")
		}
		if err != nil {
			u.log.Error("create sale failed", zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.SaleItems().CreateBulk(ctx, saleID, saleItems); err != nil {
			u.log.Error("create sale items failed", zap.Int64("sale_id", saleID), zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = SaleOutput{
			ID:           saleID,
			CustomerID:   in.CustomerID,
			CustomerName: customer.Name,
			SellerID:     in.SellerID,
			SellerName:   seller.Name,
			Total:        total,
			SoldAt:       soldAt,
			Items:        itemOuts,
		}
		return nil
	})

	if err != nil {
		return SaleOutput{}, err
	}
	return out, nil
}

func (u *SaleUsecase) GetSale(ctx context.Context, saleID int64) (SaleOutput, error) {
	if saleID <= 0 {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out SaleOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		s, err := r.Sales().FindByID(ctx, saleID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "sale not found")
		}
		if err != nil {
			u.log.Error("load sale failed", zap.Int64("sale_id", saleID), zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = u.toSaleOutput(ctx, r, s)
		return err
	})

	if err != nil {
		return SaleOutput{}, err
	}
	return out, nil
}

// ListSalesByPeriod は期間内の販売を新しい順で返す（明細なし）。
func (u *SaleUsecase) ListSalesByPeriod(ctx context.Context, from, to time.Time) ([]SaleOutput, error) {
	if from.IsZero() || to.IsZero() {
		return []SaleOutput{}, NewHTTPError(http.StatusBadRequest, "from and to required")
	}
	if from.After(to) {
		return []SaleOutput{}, NewHTTPError(http.StatusBadRequest, "from must be before to")
	}

	var outs []SaleOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		sales, err := r.Sales().ListByPeriod(ctx, repo.SalePeriodFilter{From: from, To: to})
		if err != nil {
			u.log.Error("list sales by period failed", zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		customers := map[int64]string{}
		sellers := map[int64]string{}

		outs = make([]SaleOutput, 0, len(sales))
		for _, s := range sales {
			if _, ok := customers[s.CustomerID]; !ok {
				if c, err := r.Customers().FindByID(ctx, s.CustomerID); err == nil {
					customers[s.CustomerID] = c.Name
				} else {
					customers[s.CustomerID] = ""
				}
			}
			if _, ok := sellers[s.SellerID]; !ok {
				if sl, err := r.Sellers().FindByID(ctx, s.SellerID); err == nil {
					sellers[s.SellerID] = sl.Name
				} else {
					sellers[s.SellerID] = ""
				}
			}

			outs = append(outs, SaleOutput{
				ID:           s.ID,
				CustomerID:   s.CustomerID,
				CustomerName: customers[s.CustomerID],
				SellerID:     s.SellerID,
				SellerName:   sellers[s.SellerID],
				Total:        s.Total,
				SoldAt:       s.SoldAt,
			})
		}
		return nil
	})

	if err != nil {
		return []SaleOutput{}, err
	}
	return outs, nil
}

// toSaleOutput は販売と明細・名前を明示的に引いて組み立てる。
func (u *SaleUsecase) toSaleOutput(ctx context.Context, r repo.TxRepos, s model.Sale) (SaleOutput, error) {
	items, err := r.SaleItems().ListBySaleID(ctx, s.ID)
	if err != nil {
		u.log.Error("list sale items failed", zap.Int64("sale_id", s.ID), zap.Error(err))
		return SaleOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	itemOuts := make([]SaleItemOutput, 0, len(items))
	for _, it := range items {
		name := "unknown"
		if p, err := r.Products().FindByID(ctx, it.ProductID); err == nil {
			name = p.Name
		}
		itemOuts = append(itemOuts, SaleItemOutput{
			ProductID: it.ProductID,
			Name:      name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}

	out := SaleOutput{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		SellerID:   s.SellerID,
		Total:      s.Total,
		SoldAt:     s.SoldAt,
		Items:      itemOuts,
	}
	if c, err := r.Customers().FindByID(ctx, s.CustomerID); err == nil {
		out.CustomerName = c.Name
	}
	if sl, err := r.Sellers().FindByID(ctx, s.SellerID); err == nil {
		out.SellerName = sl.Name
	}
	return out, nil
}
