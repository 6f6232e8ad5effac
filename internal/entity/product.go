package entity

import "github.com/google/uuid"

type ProductCondition string

const (
	ConditionNew     ProductCondition = "new"
	ConditionLikeNew ProductCondition = "like_new"
	ConditionGood    ProductCondition = "good"
	ConditionFair    ProductCondition = "fair"
	ConditionPoor    ProductCondition = "poor"
)

func (c ProductCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

type ProductStatus string

const (
	StatusAvailable ProductStatus = "available"
	StatusReserved  ProductStatus = "reserved"
	StatusSold      ProductStatus = "sold"
	StatusRented    ProductStatus = "rented"
	StatusInactive  ProductStatus = "inactive"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold, StatusRented, StatusInactive:
		return true
	}
	return false
}

type Product struct {
	Base
	Title       string           `gorm:"not null"`
	Description string           `gorm:"type:text"`
	Price       float64          `gorm:"not null"`
	Size        string           `gorm:"size:20"`
	Condition   ProductCondition `gorm:"size:20;not null"`
	Status      ProductStatus    `gorm:"size:20;not null;default:'available'"`
	ForSale     bool             `gorm:"not null;default:true"`
	ForRent     bool             `gorm:"not null;default:false"`

	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`

	Category Category
	User     User
	Images   []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

type ProductImage struct {
	Base
	ImageUrl  string    `gorm:"not null"`
	SortOrder int       `gorm:"not null;default:0"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// ImageUrls returns the image urls in display order. Images are expected to
// be loaded ordered by sort_order.
func (p *Product) ImageUrls() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.ImageUrl)
	}
	return urls
}
