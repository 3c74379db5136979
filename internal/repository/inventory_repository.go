package repository

import "context"

type InventoryRepository interface {
	// 結果が負にならないときだけ加減算する（条件付きUPDATE）。
	// 行が無い/在庫が足りないときは false。
	AdjustStockIfEnough(ctx context.Context, productID int64, delta int64) (bool, error)
}
