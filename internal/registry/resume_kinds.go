package registry

import (
	"context"

	"resume/internal/models/db_models"
)

// NameResolver finds an entity's name by entity type tag and id.
type NameResolver interface {
	NameOf(ctx context.Context, entityType string, id uint) (string, error)
}

var resumeLabels = []struct{ tag, label string }{
	{db_models.EntitySkill, "Skill"},
	{db_models.EntityWorking, "Work experience"},
	{db_models.EntityProject, "Project"},
	{db_models.EntityCourse, "Course"},
	{db_models.EntityCertificate, "Certificate"},
	{db_models.EntityPassion, "Passion"},
	{db_models.EntityCourseDeveloper, "Course developer"},
}

// ForResume registers every resume entity type, resolving names through names.
func ForResume(names NameResolver) (*Registry, error) {
	kinds := make([]Kind, 0, len(resumeLabels))
	for _, l := range resumeLabels {
		tag := l.tag
		kinds = append(kinds, Kind{
			Tag:   tag,
			Label: l.label,
			Accessor: AccessorFunc(func(ctx context.Context, id uint) (string, error) {
				return names.NameOf(ctx, tag, id)
			}),
		})
	}
	return New(kinds...)
}
