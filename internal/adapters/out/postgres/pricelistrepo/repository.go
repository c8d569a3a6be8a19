package pricelistrepo

import (
	"context"

	"cleanly/internal/core/domain/services"
	"cleanly/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPriceListRepository implements PriceListRepository using GORM.
type GormPriceListRepository struct {
	db *gorm.DB
}

// NewGormPriceListRepository creates a new GORM price list repository.
func NewGormPriceListRepository(db *gorm.DB) *GormPriceListRepository {
	return &GormPriceListRepository{db: db}
}

// GetAll loads the full price list as a snapshot for one calculation.
func (r *GormPriceListRepository) GetAll(ctx context.Context) (services.PriceList, error) {
	var dtos []PriceEntryDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	priceList := make(services.PriceList, len(dtos))
	for _, dto := range dtos {
		priceList[dto.Key] = dto.Price
	}

	return priceList, nil
}

// Upsert writes a unit price, inserting or overwriting as needed.
func (r *GormPriceListRepository) Upsert(ctx context.Context, key string, price decimal.Decimal) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}

	dto := PriceEntryDTO{Key: key, Price: price}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"price"}),
		}).
		Create(&dto).Error
}
