package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Description string          `gorm:"type:varchar(500)" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int64           `gorm:"not null" json:"stock"`
	MinStock    int64           `gorm:"not null" json:"min_stock"`
	Image       string          `gorm:"type:varchar(255)" json:"image,omitempty"`
	SupplierID  int64           `gorm:"not null;index" json:"supplier_id"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}
