package model

import (
	"time"

	"github.com/shopspring/decimal"
)

//確定後は変更不可（更新・削除なし）

type Sale struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID     int64           `gorm:"not null;index" json:"customer_id"`
	SellerID       int64           `gorm:"not null;index" json:"seller_id"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	IdempotencyKey string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	SoldAt         time.Time       `gorm:"not null;index" json:"sold_at"`
	CreatedAt      time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
