package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/yungbote/sunomirror-backend/internal/types"
  "github.com/yungbote/sunomirror-backend/internal/utils"
  "github.com/yungbote/sunomirror-backend/internal/platform/logger"
)

type PostgresService struct {
  db *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  log.Info("Loading environment variables...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "sunomirror", log)
  log.Debug("Environment variables loaded")

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  if err := SetupJoinTables(s.db); err != nil {
    s.log.Error("Join table setup failed", "error", err)
    return err
  }
  err := s.db.AutoMigrate(
    &types.Profile{},
    &types.Clip{},
    &types.Playlist{},
    &types.PlaylistClip{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  s.log.Info("Configuring foreign key relationships for postgres tables...")
  statements := []string{
    `ALTER TABLE "clips"
     ADD CONSTRAINT "fk_clips_profile_id"
     FOREIGN KEY ("profile_id")
     REFERENCES "profiles"("id")
     ON DELETE CASCADE`,
    `ALTER TABLE "playlists"
     ADD CONSTRAINT "fk_playlists_profile_id"
     FOREIGN KEY ("profile_id")
     REFERENCES "profiles"("id")
     ON DELETE CASCADE`,
    `ALTER TABLE "playlist_clips"
     ADD CONSTRAINT "fk_playlist_clips_playlist_id"
     FOREIGN KEY ("playlist_id")
     REFERENCES "playlists"("id")
     ON DELETE CASCADE`,
    `ALTER TABLE "playlist_clips"
     ADD CONSTRAINT "fk_playlist_clips_clip_id"
     FOREIGN KEY ("clip_id")
     REFERENCES "clips"("id")
     ON DELETE CASCADE`,
  }
  for _, stmt := range statements {
    if err := s.db.Exec(stmt).Error; err != nil {
      s.log.Warn("Foreign key statement failed (may already exist)", "error", err)
    }
  }
  return nil
}

// SetupJoinTables registers the explicit membership model so gorm routes the
// Playlist<->Clip many2many through playlist_clips with its extra columns.
func SetupJoinTables(db *gorm.DB) error {
  if err := db.SetupJoinTable(&types.Playlist{}, "Clips", &types.PlaylistClip{}); err != nil {
    return err
  }
  return db.SetupJoinTable(&types.Clip{}, "Playlists", &types.PlaylistClip{})
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
