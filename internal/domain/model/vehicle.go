package model

import "time"

type Vehicle struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Brand     string    `gorm:"type:varchar(50);not null" json:"brand"`
	ModelYear string    `gorm:"type:varchar(20)" json:"model_year"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
