package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/yungbote/sunomirror-backend/internal/services"
)

type PlaylistHandler struct {
  playlistService services.PlaylistService
}

func NewPlaylistHandler(playlistService services.PlaylistService) *PlaylistHandler {
  return &PlaylistHandler{playlistService: playlistService}
}

func (plh *PlaylistHandler) List(c *gin.Context) {
  skip := queryInt(c, "skip", 0)
  limit := queryInt(c, "limit", 100)
  playlists, err := plh.playlistService.GetAll(c.Request.Context(), skip, limit)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, playlists)
}

func (plh *PlaylistHandler) GetByID(c *gin.Context) {
  id := c.Param("id")
  playlist, err := plh.playlistService.GetByID(c.Request.Context(), id)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  if playlist == nil {
    c.JSON(http.StatusNotFound, gin.H{"error": "playlist not found"})
    return
  }
  c.JSON(http.StatusOK, playlist)
}

func (plh *PlaylistHandler) Delete(c *gin.Context) {
  id := c.Param("id")
  found, err := plh.playlistService.Delete(c.Request.Context(), id)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  if !found {
    c.JSON(http.StatusNotFound, gin.H{"error": "playlist not found"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"deleted": id})
}
