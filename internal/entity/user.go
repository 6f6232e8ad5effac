package entity

import "time"

type User struct {
	Base
	Email        string `gorm:"not null;index"`
	PasswordHash string `gorm:"not null"`
	Name         string `gorm:"not null"`
	Phone        *string
	AvatarUrl    *string
	LastLogin    *time.Time

	Products []Product `gorm:"foreignKey:UserID"`
}

type UserFilter struct {
	Email *string
	Name  *string
}
