package main

import (
  "fmt"
  "os"

  "github.com/yungbote/sunomirror-backend/internal/clients/suno"
  "github.com/yungbote/sunomirror-backend/internal/db"
  "github.com/yungbote/sunomirror-backend/internal/dto"
  "github.com/yungbote/sunomirror-backend/internal/handlers"
  "github.com/yungbote/sunomirror-backend/internal/platform/logger"
  "github.com/yungbote/sunomirror-backend/internal/repos"
  "github.com/yungbote/sunomirror-backend/internal/server"
  "github.com/yungbote/sunomirror-backend/internal/services"
  "github.com/yungbote/sunomirror-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  profileRepo := repos.NewProfileRepo(thePG, log)
  clipRepo := repos.NewClipRepo(thePG, log)
  playlistRepo := repos.NewPlaylistRepo(thePG, log)

  // Upstream client
  sunoClient := suno.NewClient(log)

  // Services
  log.Info("Setting up Services from main...")
  mapper := dto.NewMapper(log)
  profileService := services.NewProfileService(thePG, log, profileRepo, clipRepo, playlistRepo, sunoClient, mapper)
  clipService := services.NewClipService(thePG, log, clipRepo, sunoClient, mapper)
  playlistService := services.NewPlaylistService(thePG, log, playlistRepo, clipRepo, sunoClient, mapper)

  // Handlers
  log.Info("Setting up handlers from main...")
  profileHandler := handlers.NewProfileHandler(profileService)
  clipHandler := handlers.NewClipHandler(clipService)
  playlistHandler := handlers.NewPlaylistHandler(playlistService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    ProfileHandler:  profileHandler,
    ClipHandler:     clipHandler,
    PlaylistHandler: playlistHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  log.Info("Server listening", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Fatal("Server exited", "error", err)
  }
}
