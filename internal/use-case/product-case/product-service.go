package product_service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/00rosa/rena-plataform/internal/dtos/product_dto"
	"github.com/00rosa/rena-plataform/internal/entity"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
	"github.com/00rosa/rena-plataform/internal/repo/uow"
	"github.com/00rosa/rena-plataform/state"
)

type ProductService struct {
	AppState *state.AppState
	Uow      uow.Factory
}

func NewProductService(appState *state.AppState) ProductServiceContract {
	return &ProductService{
		AppState: appState,
		Uow:      uow.NewFactory(appState.DB),
	}
}

func (s *ProductService) Create(ctx context.Context, req product_dto.CreateProductRequest, ownerId uuid.UUID) (*product_dto.ProductResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	owner, err := u.Users().GetById(ctx, ownerId)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, app_error.NotFound("user not found", "user_id")
	}

	exists, err := u.Categories().Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, app_error.NotFound("category not found", "category_id")
	}

	forSale := true
	if req.ForSale != nil {
		forSale = *req.ForSale
	}
	forRent := false
	if req.ForRent != nil {
		forRent = *req.ForRent
	}

	product := &entity.Product{
		Base:        entity.Base{ID: uuid.New(), IsActive: true},
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Size:        req.Size,
		Condition:   entity.ProductCondition(req.Condition),
		Status:      entity.StatusAvailable,
		ForSale:     forSale,
		ForRent:     forRent,
		CategoryID:  req.CategoryID,
		UserID:      ownerId,
		Images:      buildImages(uuid.Nil, req.ImageUrls),
	}
	for i := range product.Images {
		product.Images[i].ProductID = product.ID
	}

	u.Products().Add(product)
	if _, err := u.SaveChanges(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("title", product.Title).Str("user_id", ownerId.String()).Msg("product created")

	// The staged insert does not resolve the related category and user
	// names, so read the full graph back.
	created, err := u.Products().GetById(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, app_error.Internal("product vanished after create", "db-error")
	}

	return product_dto.FromEntity(created), nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req product_dto.UpdateProductRequest, requesterId uuid.UUID) (*product_dto.ProductResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	product, err := u.Products().GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, app_error.NotFound("product not found", "id")
	}
	if product.UserID != requesterId {
		return nil, app_error.Forbidden("you do not own this product", "user_id")
	}

	applyPatch(product, req)

	if req.CategoryID != nil {
		exists, err := u.Categories().Exists(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, app_error.NotFound("category not found", "category_id")
		}
		product.CategoryID = *req.CategoryID
	}

	if err := u.BeginTransaction(ctx); err != nil {
		return nil, err
	}

	u.Products().Update(product)
	if req.ImageUrls != nil {
		// A provided list, even an empty one, fully replaces the image set.
		u.Products().ReplaceImages(product.ID, buildImages(product.ID, *req.ImageUrls))
	}

	if _, err := u.SaveChanges(ctx); err != nil {
		return nil, err
	}

	updated, err := u.Products().GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, app_error.Internal("product vanished after update", "db-error")
	}

	if err := u.CommitTransaction(ctx); err != nil {
		return nil, err
	}

	return product_dto.FromEntity(updated), nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID, requesterId uuid.UUID) (bool, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	product, err := u.Products().GetById(ctx, id)
	if err != nil {
		return false, err
	}
	if product == nil || product.UserID != requesterId {
		return false, nil
	}

	u.Products().Delete(product)
	if _, err := u.SaveChanges(ctx); err != nil {
		return false, err
	}

	log.Info().Str("id", id.String()).Msg("product soft-deleted")
	return true, nil
}

func (s *ProductService) ToggleStatus(ctx context.Context, id uuid.UUID, requesterId uuid.UUID, status entity.ProductStatus) (bool, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	product, err := u.Products().GetById(ctx, id)
	if err != nil {
		return false, err
	}
	if product == nil || product.UserID != requesterId {
		return false, nil
	}

	product.Status = status
	u.Products().Update(product)
	if _, err := u.SaveChanges(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (s *ProductService) GetById(ctx context.Context, id uuid.UUID) (*product_dto.ProductResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	product, err := u.Products().GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	return product_dto.FromEntity(product), nil
}

// Search restricts to the category first when one is given and then matches
// title/description in-process; otherwise the store runs the full substring
// search including category names.
func (s *ProductService) Search(ctx context.Context, term string, categoryId *uuid.UUID) ([]product_dto.ProductResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	if categoryId != nil {
		products, err := u.Products().GetByCategoryId(ctx, *categoryId)
		if err != nil {
			return nil, err
		}

		needle := strings.ToLower(term)
		matched := make([]entity.Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Title), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) {
				matched = append(matched, p)
			}
		}
		return product_dto.FromEntities(matched), nil
	}

	products, err := u.Products().Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return product_dto.FromEntities(products), nil
}

func (s *ProductService) ListByUser(ctx context.Context, userId uuid.UUID) ([]product_dto.ProductResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	products, err := u.Products().GetByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	return product_dto.FromEntities(products), nil
}

func (s *ProductService) ListByStatus(ctx context.Context, ownerId uuid.UUID, status entity.ProductStatus) ([]product_dto.ProductResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	products, err := u.Products().GetByUserAndStatus(ctx, ownerId, status)
	if err != nil {
		return nil, err
	}
	return product_dto.FromEntities(products), nil
}

func (s *ProductService) ListAvailable(ctx context.Context) ([]product_dto.ProductResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	products, err := u.Products().GetAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return product_dto.FromEntities(products), nil
}

func (s *ProductService) CountByUser(ctx context.Context, userId uuid.UUID) (int64, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	return u.Products().CountByUserId(ctx, userId)
}

func applyPatch(product *entity.Product, req product_dto.UpdateProductRequest) {
	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Size != nil {
		product.Size = *req.Size
	}
	if req.Condition != nil {
		product.Condition = entity.ProductCondition(*req.Condition)
	}
	if req.Status != nil {
		product.Status = entity.ProductStatus(*req.Status)
	}
	if req.ForSale != nil {
		product.ForSale = *req.ForSale
	}
	if req.ForRent != nil {
		product.ForRent = *req.ForRent
	}
}

// buildImages assigns each url a sort order equal to its position in the
// input list, starting at zero.
func buildImages(productId uuid.UUID, urls []string) []entity.ProductImage {
	images := make([]entity.ProductImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, entity.ProductImage{
			Base:      entity.Base{ID: uuid.New(), IsActive: true},
			ImageUrl:  url,
			SortOrder: i,
			ProductID: productId,
		})
	}
	return images
}
