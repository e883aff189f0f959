package models

import "time"

type Inquiry struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	PropertyID         int64     `gorm:"index;not null"`
	Property           *Property `gorm:"foreignKey:PropertyID"`
	CustomerID         int64     `gorm:"index;not null"`
	Customer           *User     `gorm:"foreignKey:CustomerID"`
	SellerID           int64     `gorm:"index;not null"`
	Seller             *User     `gorm:"foreignKey:SellerID"`
	InquiryDescription *string   `gorm:"type:text"`
	Status             string    `gorm:"type:varchar(20);not null;index"`
	TermsAccepted      bool      `gorm:"not null"`
	ExpiryDate         time.Time `gorm:"not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Inquiry) TableName() string {
	return "inquiries"
}
