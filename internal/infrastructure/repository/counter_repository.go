package repository

import (
	"context"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	domainRepo "github.com/cancha-central/pos-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new counter repository
func NewCounterRepository(db *gorm.DB) domainRepo.CounterRepository {
	return &counterRepository{db: db}
}

// Next bumps the named counter with an upsert and reads the new value back
// inside the same transaction. The upsert takes a row lock, so concurrent
// callers serialize and always get distinct values.
func (r *counterRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counter := entity.Counter{Name: name, LastValue: 1}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"last_value": gorm.Expr("counters.last_value + 1"),
			}),
		}).Create(&counter)
		if result.Error != nil {
			return result.Error
		}

		return tx.Model(&entity.Counter{}).
			Where("name = ?", name).
			Select("last_value").
			Scan(&value).Error
	})

	return value, err
}
