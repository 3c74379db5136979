package model

//商品と適合車両の対応。ORMのリレーション自動解決は使わず、明示的に引く。

type ProductVehicle struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_product_vehicle" json:"product_id"`
	VehicleID int64 `gorm:"not null;uniqueIndex:idx_product_vehicle;index" json:"vehicle_id"`
}
