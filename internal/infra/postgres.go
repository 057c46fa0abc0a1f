package infra

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"resume/internal/models/db_models"
	"resume/pkg/config"
)

func InitPostgresql(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.IsLocal() {
		level = gormlogger.Info
	}

	connectionPool, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := connectionPool.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info("Connected to PostgreSQL")
	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("Error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("Error closing database connection", zap.Error(err))
	} else {
		log.Info("PostgreSQL database connection closed successfully")
	}
}

// AllModels lists every persisted model, in dependency order, for
// AutoMigrate in tests and tools.
func AllModels() []interface{} {
	return []interface{}{
		&db_models.Country{},
		&db_models.City{},
		&db_models.Specialization{},
		&db_models.Profession{},
		&db_models.Organization{},
		&db_models.Language{},
		&db_models.User{},
		&db_models.Skill{},
		&db_models.Working{},
		&db_models.Project{},
		&db_models.CourseDeveloper{},
		&db_models.Course{},
		&db_models.Certificate{},
		&db_models.Passion{},
		&db_models.MenuItem{},
		&db_models.EntityTypeRecord{},
		&db_models.Feedback{},
	}
}
