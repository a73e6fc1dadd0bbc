package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/sunomirror-backend/internal/handlers"
)

type RouterConfig struct {
  ProfileHandler  *handlers.ProfileHandler
  ClipHandler     *handlers.ClipHandler
  PlaylistHandler *handlers.PlaylistHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "DELETE", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  router.GET("/healthcheck", handlers.HealthCheck)

  api := router.Group("/api/v1")
  {
    // Profiles
    api.GET("/profiles", cfg.ProfileHandler.List)
    api.GET("/profiles/:handle", cfg.ProfileHandler.GetByHandle)
    api.DELETE("/profiles/:id", cfg.ProfileHandler.Delete)
    // Clips
    api.GET("/clips", cfg.ClipHandler.List)
    api.GET("/clips/:id", cfg.ClipHandler.GetByID)
    api.DELETE("/clips/:id", cfg.ClipHandler.Delete)
    // Playlists
    api.GET("/playlists", cfg.PlaylistHandler.List)
    api.GET("/playlists/:id", cfg.PlaylistHandler.GetByID)
    api.DELETE("/playlists/:id", cfg.PlaylistHandler.Delete)
  }

  return router
}
