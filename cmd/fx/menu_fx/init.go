package menu_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"resume/internal/repositories"
	"resume/internal/services"
)

var Module = fx.Provide(provideMenuRepo, provideMenuService)

func provideMenuRepo(db *gorm.DB) repositories.MenuRepository {
	return repositories.NewMenuRepository(db)
}

func provideMenuService(menuRepo repositories.MenuRepository, log *zap.Logger) services.MenuServiceInterface {
	return services.NewMenuService(menuRepo, log)
}
