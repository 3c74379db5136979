package model

import "time"

//在庫が最低数量を下回ったときの通知レコード
//未解決の通知は1商品につき最大1件

type StockNotification struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID     int64      `gorm:"not null;index" json:"product_id"`
	StockSnapshot int64      `gorm:"not null" json:"stock_snapshot"`
	Resolved      bool       `gorm:"not null;default:false;index" json:"resolved"`
	CreatedAt     time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}
