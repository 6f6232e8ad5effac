package state

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/00rosa/rena-plataform/internal/entity"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.Product{},
		&entity.ProductImage{},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to migrate database schema")
		return err
	}

	log.Info().Msg("database migrations completed successfully")

	return SeedCategories(db)
}

// SeedCategories inserts the default categories on first start. Names that
// already exist among active rows are left alone.
func SeedCategories(db *gorm.DB) error {
	names := []string{"Clothing", "Shoes", "Accessories", "Electronics", "Home", "Sports"}

	for _, name := range names {
		var count int64
		if err := db.Model(&entity.Category{}).Scopes(entity.Active).
			Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		category := entity.Category{
			Base: entity.Base{ID: uuid.New(), IsActive: true},
			Name: name,
		}
		if err := db.Create(&category).Error; err != nil {
			return err
		}
	}

	log.Info().Msg("default categories seeded")
	return nil
}
