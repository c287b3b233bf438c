package main

import (
	"context"

	"github.com/cravefit/backend/config"
	"github.com/cravefit/backend/internal/database"
	"github.com/cravefit/backend/pkg/logger"
)

// Runs schema migrations and one-time storage setup, then exits. Meant for
// deploy pipelines and local bootstrap.
func main() {
	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalw("migration failed", "error", err)
	}
	log.Infow("database migrations applied")

	ctx := context.Background()
	s3cfg, err := config.NewS3Config(ctx)
	if err != nil {
		log.Warnw("object storage unavailable, skipping bucket setup", "error", err)
		return
	}
	if err := s3cfg.SetupBucketPolicy(ctx); err != nil {
		log.Warnw("bucket policy setup failed", "error", err)
		return
	}
	log.Infow("storage bucket configured", "bucket", s3cfg.BucketName)
}
