// Package sequencerepo implements named database sequences used for
// human-readable order numbering.
package sequencerepo

import (
	"context"

	"cleanly/internal/pkg/errs"

	"gorm.io/gorm"
)

// SequenceDTO represents one named counter.
type SequenceDTO struct {
	Name  string `gorm:"type:varchar(64);primaryKey"`
	Value int64
}

// TableName specifies the database table name for sequences.
func (SequenceDTO) TableName() string {
	return "sequences"
}

// GormSequenceGenerator implements SequenceGenerator using GORM.
type GormSequenceGenerator struct {
	db *gorm.DB
}

// NewGormSequenceGenerator creates a new GORM sequence generator.
func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db}
}

// Next atomically increments the named counter and returns its new value.
// The upsert runs as a single statement, so concurrent callers always
// observe distinct values even outside a surrounding transaction.
func (g *GormSequenceGenerator) Next(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, errs.NewValueIsRequiredError("name")
	}

	var value int64
	err := g.db.WithContext(ctx).Raw(
		`INSERT INTO sequences (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		 RETURNING value`,
		name,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
