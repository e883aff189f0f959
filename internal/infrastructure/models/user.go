package models

import "time"

type User struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	FullName      string  `gorm:"type:varchar(100);not null"`
	MobileNumber  string  `gorm:"type:varchar(10);uniqueIndex;not null"`
	Email         string  `gorm:"type:varchar(255);not null"`
	AadhaarNumber *string `gorm:"type:varchar(12);uniqueIndex"`
	PANCard       *string `gorm:"column:pan_card;type:varchar(10);uniqueIndex"`
	Address       *string `gorm:"type:varchar(500)"`
	UserType      string  `gorm:"type:varchar(20);not null"`
	IsActive      bool    `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (User) TableName() string {
	return "users"
}
