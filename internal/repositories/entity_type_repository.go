package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resume/internal/models/db_models"
)

type EntityTypeRepository interface {
	Sync(ctx context.Context, records []db_models.EntityTypeRecord) error
	List(ctx context.Context) ([]db_models.EntityTypeRecord, error)
	Delete(ctx context.Context, tag string) error
}

type entityTypeRepository struct {
	db *gorm.DB
}

func NewEntityTypeRepository(db *gorm.DB) EntityTypeRepository {
	return &entityTypeRepository{db: db}
}

// Sync upserts the registered entity types so feedback rows can reference them.
func (r *entityTypeRepository) Sync(ctx context.Context, records []db_models.EntityTypeRecord) error {
	if len(records) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tag"}},
			DoUpdates: clause.AssignmentColumns([]string{"label"}),
		}).
		Create(&records).Error
	if err != nil {
		return err
	}
	return nil
}

func (r *entityTypeRepository) List(ctx context.Context) ([]db_models.EntityTypeRecord, error) {
	var records []db_models.EntityTypeRecord
	if err := r.db.WithContext(ctx).Order("tag").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes an entity type. The database cascades the removal to all
// feedback of that type.
func (r *entityTypeRepository) Delete(ctx context.Context, tag string) error {
	err := r.db.WithContext(ctx).
		Where("tag = ?", tag).
		Delete(&db_models.EntityTypeRecord{}).Error
	if err != nil {
		return err
	}
	return nil
}
