package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is embedded in every persisted entity. Soft delete is a flip of
// IsActive; rows are never physically removed.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	IsActive  bool      `gorm:"not null;default:true;index"`
}

// Active is the shared soft-delete predicate. Every standard read path goes
// through this scope so no query can forget the filter.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// ActiveIn is Active with an explicit table qualifier, for joined queries
// where the bare column would be ambiguous.
func ActiveIn(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".is_active = ?", true)
	}
}
