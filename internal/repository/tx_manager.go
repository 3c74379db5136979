package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Products() ProductRepository
	Inventory() InventoryRepository
	Notifications() NotificationRepository
	Sales() SaleRepository
	SaleItems() SaleItemRepository
	Customers() CustomerRepository
	Sellers() SellerRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
