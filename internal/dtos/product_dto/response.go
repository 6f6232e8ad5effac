package product_dto

import (
	"time"

	"github.com/00rosa/rena-plataform/internal/entity"
	"github.com/google/uuid"
)

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Size        string    `json:"size"`
	Condition   string    `json:"condition"`
	Status      string    `json:"status"`
	ForSale     bool      `json:"for_sale"`
	ForRent     bool      `json:"for_rent"`
	CreatedAt   time.Time `json:"created_at"`

	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`

	ImageUrls []string `json:"image_urls"`
}

type ProductCountResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Count  int64     `json:"count"`
}

// FromEntity expects a fully loaded aggregate: Category, User and Images
// ordered by sort_order.
func FromEntity(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		Size:         p.Size,
		Condition:    string(p.Condition),
		Status:       string(p.Status),
		ForSale:      p.ForSale,
		ForRent:      p.ForRent,
		CreatedAt:    p.CreatedAt,
		CategoryID:   p.CategoryID,
		CategoryName: p.Category.Name,
		UserID:       p.UserID,
		UserName:     p.User.Name,
		ImageUrls:    p.ImageUrls(),
	}
}

func FromEntities(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *FromEntity(&products[i]))
	}
	return out
}
