// Command seed imports a YAML resume document into the database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"resume/internal/infra"
	"resume/internal/models/request_models"
	"resume/internal/registry"
	"resume/internal/repositories"
	"resume/internal/services"
	"resume/pkg/config"
	"resume/pkg/logger"
	"resume/pkg/utils"
)

func main() {
	path := flag.String("file", "scripts/resume.example.yaml", "resume document to import")
	flag.Parse()

	if err := run(*path); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	if cfg.Database.RunMigrations {
		if err := infra.RunMigrations(cfg.Database.URL, log); err != nil {
			return err
		}
	}
	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return err
	}
	defer infra.ClosePostgresql(db, log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	resumeRepo := repositories.NewResumeRepository(db)
	reg, err := registry.ForResume(resumeRepo)
	if err != nil {
		return err
	}
	if err := repositories.NewEntityTypeRepository(db).Sync(ctx, reg.Records()); err != nil {
		return fmt.Errorf("sync entity types: %w", err)
	}

	svc := services.NewResumeService(resumeRepo, repositories.NewUserRepository(db), log)
	ownerID, err := svc.Import(ctx, doc)
	if err != nil {
		var verr *utils.ValidationError
		if errors.As(err, &verr) {
			for field, msgs := range verr.Fields {
				log.Error("invalid resume document", zap.String("field", field), zap.Strings("errors", msgs))
			}
		}
		return err
	}

	log.Info("resume imported", zap.String("file", path), zap.Uint("owner_id", ownerID))
	return nil
}

func readDocument(path string) (*request_models.ResumeDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc request_models.ResumeDocument
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &doc, nil
}
