package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"resume/internal/models/db_models"
	"resume/internal/models/request_models"
	"resume/pkg/utils"
)

type MenuRepository interface {
	ListByMenu(ctx context.Context, menuName string) ([]db_models.MenuItem, error)
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (m *menuRepository) ListByMenu(ctx context.Context, menuName string) ([]db_models.MenuItem, error) {
	var items []db_models.MenuItem
	err := m.db.WithContext(ctx).
		Where("menu_name = ?", menuName).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// replaceMenu drops every point of the named menu and recreates it from in.
// Parents are linked in a second pass so items may be listed in any order.
func replaceMenu(tx *gorm.DB, in request_models.MenuInput) error {
	if err := tx.Where("menu_name = ?", in.Name).Delete(&db_models.MenuItem{}).Error; err != nil {
		return err
	}

	bySlug := make(map[string]*db_models.MenuItem, len(in.Items))
	created := make([]*db_models.MenuItem, 0, len(in.Items))
	for _, p := range in.Items {
		item := &db_models.MenuItem{MenuName: in.Name, PointName: p.Name, Slug: p.Slug}
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("menu %s: point %q: %w", in.Name, p.Slug, err)
		}
		bySlug[p.Slug] = item
		created = append(created, item)
	}

	for i, p := range in.Items {
		if p.Parent == "" {
			continue
		}
		parent, ok := bySlug[p.Parent]
		if !ok {
			return fmt.Errorf("menu %s: parent %q: %w", in.Name, p.Parent, utils.ErrEntityNotFound)
		}
		err := tx.Model(&db_models.MenuItem{}).
			Where("id = ?", created[i].ID).
			Update("parent_id", parent.ID).Error
		if err != nil {
			return err
		}
	}
	return nil
}
