package registry_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"resume/internal/registry"
	"resume/internal/repositories"
)

var Module = fx.Options(
	fx.Provide(provideEntityTypeRepo, provideRegistry),
	fx.Invoke(syncEntityTypes),
)

func provideEntityTypeRepo(db *gorm.DB) repositories.EntityTypeRepository {
	return repositories.NewEntityTypeRepository(db)
}

func provideRegistry(resumeRepo repositories.ResumeRepository) (*registry.Registry, error) {
	return registry.ForResume(resumeRepo)
}

// syncEntityTypes stores the registered types before the server accepts
// feedback, so the entity_type foreign key can be satisfied.
func syncEntityTypes(lc fx.Lifecycle, reg *registry.Registry, repo repositories.EntityTypeRepository, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := repo.Sync(ctx, reg.Records()); err != nil {
				return err
			}
			log.Info("entity types synced", zap.Int("count", len(reg.Records())))
			return nil
		},
	})
}
