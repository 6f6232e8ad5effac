package entity

type Category struct {
	Base
	Name        string `gorm:"not null;index"`
	Description *string

	Products []Product `gorm:"foreignKey:CategoryID"`
}
