package handlers

import (
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"
  "github.com/yungbote/sunomirror-backend/internal/services"
)

type ProfileHandler struct {
  profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
  return &ProfileHandler{profileService: profileService}
}

func (ph *ProfileHandler) List(c *gin.Context) {
  skip := queryInt(c, "skip", 0)
  limit := queryInt(c, "limit", 200)
  profiles, err := ph.profileService.GetAll(c.Request.Context(), skip, limit)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, profiles)
}

func (ph *ProfileHandler) GetByHandle(c *gin.Context) {
  handle := c.Param("handle")
  profile, err := ph.profileService.GetByHandle(c.Request.Context(), handle)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  if profile == nil {
    c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
    return
  }
  c.JSON(http.StatusOK, profile)
}

func (ph *ProfileHandler) Delete(c *gin.Context) {
  id := c.Param("id")
  found, err := ph.profileService.Delete(c.Request.Context(), id)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  if !found {
    c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func queryInt(c *gin.Context, key string, fallback int) int {
  raw := c.Query(key)
  if raw == "" {
    return fallback
  }
  value, err := strconv.Atoi(raw)
  if err != nil || value < 0 {
    return fallback
  }
  return value
}
