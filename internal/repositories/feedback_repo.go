package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resume/internal/models/db_models"
	"resume/pkg/utils"
)

type FeedbackRepositoryInterface interface {
	CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error
	ListPublished(ctx context.Context, target db_models.TargetRef) ([]db_models.Feedback, error)
	ListForModeration(ctx context.Context) ([]db_models.Feedback, error)
	FindByID(ctx context.Context, id uint) (*db_models.Feedback, error)
	UpdateStatus(ctx context.Context, id uint, status db_models.FeedbackStatus) (*db_models.Feedback, error)
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(feedback).Error; err != nil {
		return err
	}
	return nil
}

// ListPublished returns the published feedback attached to exactly target,
// newest first. A collection target matches only rows without an entity id.
func (r *FeedbackRepository) ListPublished(ctx context.Context, target db_models.TargetRef) ([]db_models.Feedback, error) {
	q := r.db.WithContext(ctx).
		Preload("AuthorUser").
		Where("entity_type = ? AND status = ?", target.EntityType, db_models.StatusPublished)
	if target.IsCollection() {
		q = q.Where("entity_id IS NULL")
	} else {
		q = q.Where("entity_id = ?", *target.EntityID)
	}

	var feedbacks []db_models.Feedback
	if err := q.Order("created_at DESC").Order("id DESC").Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// ListForModeration returns every record in every status, grouped by target.
func (r *FeedbackRepository) ListForModeration(ctx context.Context) ([]db_models.Feedback, error) {
	var feedbacks []db_models.Feedback
	err := r.db.WithContext(ctx).
		Preload("AuthorUser").
		Order("entity_type ASC").
		Order("entity_id ASC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id uint) (*db_models.Feedback, error) {
	var feedback db_models.Feedback
	err := r.db.WithContext(ctx).Preload("AuthorUser").First(&feedback, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrFeedbackNotFound
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *FeedbackRepository) UpdateStatus(ctx context.Context, id uint, status db_models.FeedbackStatus) (*db_models.Feedback, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Feedback{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.ErrFeedbackNotFound
	}
	return r.FindByID(ctx, id)
}
