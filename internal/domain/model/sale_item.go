package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	SaleID    int64           `gorm:"not null;index" json:"sale_id"`
	ProductID int64           `gorm:"not null;index" json:"product_id"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
