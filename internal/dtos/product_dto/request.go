package product_dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/00rosa/rena-plataform/internal/entity"
)

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=5,max=200"`
	Description string   `json:"description" validate:"required,min=10,max=2000"`
	Price       float64  `json:"price" validate:"required,gt=0,lte=100000"`
	Size        string   `json:"size" validate:"required,max=20"`
	Condition   string   `json:"condition" validate:"required,condition"`
	ForSale     *bool    `json:"for_sale"`
	ForRent     *bool    `json:"for_rent"`
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	ImageUrls   []string `json:"image_urls" validate:"dive,url"`
}

// UpdateProductRequest has patch semantics: nil means leave the field alone.
// ImageUrls is a pointer to a slice so an explicit empty list, which wipes
// all images, is distinguishable from the list being absent.
type UpdateProductRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=5,max=200"`
	Description *string    `json:"description" validate:"omitempty,min=10,max=2000"`
	Price       *float64   `json:"price" validate:"omitempty,gt=0,lte=100000"`
	Size        *string    `json:"size" validate:"omitempty,max=20"`
	Condition   *string    `json:"condition" validate:"omitempty,condition"`
	Status      *string    `json:"status" validate:"omitempty,product_status"`
	ForSale     *bool      `json:"for_sale"`
	ForRent     *bool      `json:"for_rent"`
	CategoryID  *uuid.UUID `json:"category_id"`
	ImageUrls   *[]string  `json:"image_urls" validate:"omitempty,dive,url"`
}

type ToggleStatusRequest struct {
	Status string `json:"status" validate:"required,product_status"`
}

func ConditionValidator(fl validator.FieldLevel) bool {
	return entity.ProductCondition(fl.Field().String()).Valid()
}

func StatusValidator(fl validator.FieldLevel) bool {
	return entity.ProductStatus(fl.Field().String()).Valid()
}
