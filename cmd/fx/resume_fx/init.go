package resume_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"resume/internal/repositories"
	"resume/internal/services"
)

var Module = fx.Provide(
	provideResumeRepo, provideUserRepo, provideResumeService)

func provideResumeRepo(db *gorm.DB) repositories.ResumeRepository {
	return repositories.NewResumeRepository(db)
}

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideResumeService(resumeRepo repositories.ResumeRepository, userRepo repositories.UserRepository, log *zap.Logger) services.ResumeServiceInterface {
	return services.NewResumeService(resumeRepo, userRepo, log)
}
