package models

import "time"

type Property struct {
	ID             int64    `gorm:"primaryKey;autoIncrement"`
	SellerID       int64    `gorm:"index;not null"`
	Seller         *User    `gorm:"foreignKey:SellerID"`
	PropertyType   string   `gorm:"type:varchar(20);not null"`
	Title          string   `gorm:"type:varchar(255);not null"`
	Description    *string  `gorm:"type:text"`
	PropertySize   float64  `gorm:"not null"`
	Price          float64  `gorm:"not null"`
	Address        string   `gorm:"type:varchar(500);not null"`
	City           string   `gorm:"type:varchar(100);not null;index"`
	State          string   `gorm:"type:varchar(100);not null"`
	Pincode        string   `gorm:"type:varchar(10);not null"`
	Latitude       *float64
	Longitude      *float64
	PropertyImages *string `gorm:"type:text"`
	PTRDocument    *string `gorm:"column:ptr_document;type:varchar(500)"`
	IsActive       bool    `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Property) TableName() string {
	return "properties"
}
