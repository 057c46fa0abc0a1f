package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"resume/internal/models/db_models"
	"resume/internal/models/response_models"
	"resume/internal/repositories"
	"resume/pkg/utils"
)

type MenuServiceInterface interface {
	Menu(ctx context.Context, name, activeSlug string) ([]*response_models.MenuNode, error)
}

type MenuService struct {
	menuRepo repositories.MenuRepository
	log      *zap.Logger
}

func NewMenuService(menuRepo repositories.MenuRepository, log *zap.Logger) MenuServiceInterface {
	return &MenuService{menuRepo: menuRepo, log: log}
}

func (s *MenuService) Menu(ctx context.Context, name, activeSlug string) ([]*response_models.MenuNode, error) {
	items, err := s.menuRepo.ListByMenu(ctx, name)
	if err != nil {
		s.log.Error("load menu", zap.String("menu", name), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return BuildMenu(items, activeSlug), nil
}

// BuildMenu turns flat menu points into a forest ordered by point name. The
// point whose slug is activeSlug and all its ancestors are expanded. Points
// with a missing parent, and points on a parent cycle, become roots.
func BuildMenu(items []db_models.MenuItem, activeSlug string) []*response_models.MenuNode {
	byID := make(map[uint]*db_models.MenuItem, len(items))
	nodes := make(map[uint]*response_models.MenuNode, len(items))
	for i := range items {
		it := &items[i]
		byID[it.ID] = it
		nodes[it.ID] = &response_models.MenuNode{ID: it.ID, Name: it.PointName, Slug: it.Slug}
	}

	parentOf := make(map[uint]uint, len(items))
	var roots []*response_models.MenuNode
	for i := range items {
		it := &items[i]
		if p, ok := effectiveParent(it, byID); ok {
			parentOf[it.ID] = p
			nodes[p].Children = append(nodes[p].Children, nodes[it.ID])
		} else {
			roots = append(roots, nodes[it.ID])
		}
	}

	if activeSlug != "" {
		for i := range items {
			if items[i].Slug != activeSlug {
				continue
			}
			nodes[items[i].ID].Active = true
			for id := items[i].ID; ; {
				nodes[id].Expanded = true
				p, ok := parentOf[id]
				if !ok {
					break
				}
				id = p
			}
			break
		}
	}

	sortNodes(roots)
	return roots
}

// effectiveParent returns the parent id of it, unless the parent is missing
// or it sits on a cycle of parent links.
func effectiveParent(it *db_models.MenuItem, byID map[uint]*db_models.MenuItem) (uint, bool) {
	if it.ParentID == nil {
		return 0, false
	}
	if _, ok := byID[*it.ParentID]; !ok {
		return 0, false
	}
	seen := map[uint]bool{}
	for cur := it; cur.ParentID != nil; {
		next, ok := byID[*cur.ParentID]
		if !ok {
			break
		}
		if next.ID == it.ID {
			return 0, false
		}
		if seen[next.ID] {
			break
		}
		seen[next.ID] = true
		cur = next
	}
	return *it.ParentID, true
}

func sortNodes(nodes []*response_models.MenuNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Name != nodes[j].Name {
			return nodes[i].Name < nodes[j].Name
		}
		return nodes[i].ID < nodes[j].ID
	})
	for _, n := range nodes {
		sortNodes(n.Children)
	}
}
