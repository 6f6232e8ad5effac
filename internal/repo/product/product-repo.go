package product_repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/00rosa/rena-plataform/internal/entity"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
)

type ProductRepo struct {
	Session Session
}

func NewProductRepo(session Session) ProductRepoContract {
	return &ProductRepo{Session: session}
}

// withRelations eagerly resolves the full product aggregate.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("User").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		})
}

func (r *ProductRepo) GetById(ctx context.Context, id uuid.UUID) (*entity.Product, *app_error.AppError) {
	var product entity.Product

	err := r.Session.Handle(ctx).
		Scopes(entity.Active, withRelations).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, app_error.Internal("unexpected error occur when fetch product", "db-error")
	}

	return &product, nil
}

func (r *ProductRepo) GetAll(ctx context.Context) ([]entity.Product, *app_error.AppError) {
	return r.list(r.Session.Handle(ctx).Scopes(entity.Active, withRelations))
}

func (r *ProductRepo) GetByUserId(ctx context.Context, userId uuid.UUID) ([]entity.Product, *app_error.AppError) {
	return r.list(r.Session.Handle(ctx).
		Scopes(entity.Active, withRelations).
		Where("user_id = ?", userId))
}

func (r *ProductRepo) GetByCategoryId(ctx context.Context, categoryId uuid.UUID) ([]entity.Product, *app_error.AppError) {
	return r.list(r.Session.Handle(ctx).
		Scopes(entity.Active, withRelations).
		Where("category_id = ?", categoryId))
}

func (r *ProductRepo) GetByUserAndStatus(ctx context.Context, userId uuid.UUID, status entity.ProductStatus) ([]entity.Product, *app_error.AppError) {
	return r.list(r.Session.Handle(ctx).
		Scopes(entity.Active, withRelations).
		Where("user_id = ? AND status = ?", userId, status))
}

func (r *ProductRepo) CountByUserId(ctx context.Context, userId uuid.UUID) (int64, *app_error.AppError) {
	var count int64

	err := r.Session.Handle(ctx).Model(&entity.Product{}).
		Scopes(entity.Active).
		Where("user_id = ?", userId).
		Count(&count).Error
	if err != nil {
		return 0, app_error.Internal("unexpected error occur when count products", "db-count")
	}

	return count, nil
}

// Search matches the term as a case-insensitive substring of the title, the
// description or the related category name.
func (r *ProductRepo) Search(ctx context.Context, term string) ([]entity.Product, *app_error.AppError) {
	pattern := "%" + term + "%"

	return r.list(r.Session.Handle(ctx).
		Scopes(entity.ActiveIn("products"), withRelations).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.title ILIKE ? OR products.description ILIKE ? OR categories.name ILIKE ?",
			pattern, pattern, pattern))
}

func (r *ProductRepo) GetAvailable(ctx context.Context) ([]entity.Product, *app_error.AppError) {
	return r.list(r.Session.Handle(ctx).
		Scopes(entity.Active, withRelations).
		Where("status = ?", entity.StatusAvailable))
}

func (r *ProductRepo) list(query *gorm.DB) ([]entity.Product, *app_error.AppError) {
	var products []entity.Product

	if err := query.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, app_error.Internal("unexpected error occur when list products", "db-error")
	}

	return products, nil
}

func (r *ProductRepo) Add(product *entity.Product) {
	r.Session.Stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Create(product)
		return res.RowsAffected, res.Error
	})
}

func (r *ProductRepo) Update(product *entity.Product) {
	r.Session.Stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Model(&entity.Product{}).Where("id = ?", product.ID).
			Select("Title", "Description", "Price", "Size", "Condition", "Status",
				"ForSale", "ForRent", "CategoryID", "IsActive", "UpdatedAt").
			Updates(product)
		return res.RowsAffected, res.Error
	})
}

// ReplaceImages stages a full replacement of the product's image set. The
// old rows go away entirely; the new ones carry their own sort order.
func (r *ProductRepo) ReplaceImages(productId uuid.UUID, images []entity.ProductImage) {
	r.Session.Stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Where("product_id = ?", productId).Delete(&entity.ProductImage{})
		if res.Error != nil {
			return res.RowsAffected, res.Error
		}
		affected := res.RowsAffected

		if len(images) == 0 {
			return affected, nil
		}

		res = tx.Create(&images)
		return affected + res.RowsAffected, res.Error
	})
}

func (r *ProductRepo) Delete(product *entity.Product) {
	product.IsActive = false
	r.Update(product)
}

func (r *ProductRepo) Exists(ctx context.Context, id uuid.UUID) (bool, *app_error.AppError) {
	var count int64

	err := r.Session.Handle(ctx).Model(&entity.Product{}).
		Scopes(entity.Active).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, app_error.Internal("unexpected error occur when check product", "db-count")
	}

	return count > 0, nil
}
