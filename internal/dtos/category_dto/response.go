package category_dto

import (
	"time"

	"github.com/00rosa/rena-plataform/internal/entity"
	"github.com/google/uuid"
)

type CategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromEntity(c *entity.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		ProductCount: len(c.Products),
		CreatedAt:    c.CreatedAt,
	}
}
