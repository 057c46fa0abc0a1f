// Package registry holds the entity types feedback may be attached to and
// resolves feedback targets back to the entities they point at.
package registry

import (
	"context"
	"errors"
	"fmt"

	"resume/internal/models/db_models"
	"resume/pkg/utils"
)

// Accessor looks up the display name of one entity of a kind. It returns
// utils.ErrEntityNotFound when the row does not exist.
type Accessor interface {
	NameOf(ctx context.Context, id uint) (string, error)
}

type AccessorFunc func(ctx context.Context, id uint) (string, error)

func (f AccessorFunc) NameOf(ctx context.Context, id uint) (string, error) {
	return f(ctx, id)
}

type Kind struct {
	Tag      string
	Label    string
	Accessor Accessor
}

type Registry struct {
	kinds map[string]Kind
	order []string
}

func New(kinds ...Kind) (*Registry, error) {
	r := &Registry{kinds: make(map[string]Kind, len(kinds))}
	for _, k := range kinds {
		if k.Tag == "" || k.Accessor == nil {
			return nil, fmt.Errorf("registry: kind %q needs a tag and an accessor", k.Tag)
		}
		if _, dup := r.kinds[k.Tag]; dup {
			return nil, fmt.Errorf("registry: duplicate kind %q", k.Tag)
		}
		r.kinds[k.Tag] = k
		r.order = append(r.order, k.Tag)
	}
	return r, nil
}

func (r *Registry) Lookup(tag string) (Kind, bool) {
	k, ok := r.kinds[tag]
	return k, ok
}

// Kinds returns the registered kinds in registration order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.order))
	for _, tag := range r.order {
		out = append(out, r.kinds[tag])
	}
	return out
}

func (r *Registry) Records() []db_models.EntityTypeRecord {
	out := make([]db_models.EntityTypeRecord, 0, len(r.order))
	for _, k := range r.Kinds() {
		out = append(out, db_models.EntityTypeRecord{Tag: k.Tag, Label: k.Label})
	}
	return out
}

// Exists reports whether the target points at a live entity. Collection
// targets of a registered kind always exist.
func (r *Registry) Exists(ctx context.Context, target db_models.TargetRef) (bool, error) {
	k, ok := r.kinds[target.EntityType]
	if !ok {
		return false, fmt.Errorf("%w: %q", utils.ErrUnresolvedTarget, target.EntityType)
	}
	if target.EntityID == nil {
		return true, nil
	}
	_, err := k.Accessor.NameOf(ctx, *target.EntityID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, utils.ErrEntityNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Describe renders a human-readable target. A target whose entity has been
// deleted degrades to "(type) id=N".
func (r *Registry) Describe(ctx context.Context, target db_models.TargetRef) (string, error) {
	k, ok := r.kinds[target.EntityType]
	if !ok {
		return "", fmt.Errorf("%w: %q", utils.ErrUnresolvedTarget, target.EntityType)
	}
	if target.EntityID == nil {
		return k.Label + " (all)", nil
	}
	name, err := k.Accessor.NameOf(ctx, *target.EntityID)
	switch {
	case err == nil:
		return fmt.Sprintf("%s %q", k.Label, name), nil
	case errors.Is(err, utils.ErrEntityNotFound):
		return fmt.Sprintf("(%s) id=%d", k.Tag, *target.EntityID), nil
	default:
		return "", err
	}
}
