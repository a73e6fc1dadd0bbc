package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/yungbote/sunomirror-backend/internal/services"
)

type ClipHandler struct {
  clipService services.ClipService
}

func NewClipHandler(clipService services.ClipService) *ClipHandler {
  return &ClipHandler{clipService: clipService}
}

func (ch *ClipHandler) List(c *gin.Context) {
  page := queryInt(c, "page", 0)
  size := queryInt(c, "size", 25)
  clips, err := ch.clipService.GetAll(c.Request.Context(), page, size)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, clips)
}

func (ch *ClipHandler) GetByID(c *gin.Context) {
  id := c.Param("id")
  clip, err := ch.clipService.GetByID(c.Request.Context(), id)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  if clip == nil {
    c.JSON(http.StatusNotFound, gin.H{"error": "clip not found"})
    return
  }
  c.JSON(http.StatusOK, clip)
}

func (ch *ClipHandler) Delete(c *gin.Context) {
  id := c.Param("id")
  found, err := ch.clipService.Delete(c.Request.Context(), id)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
    return
  }
  if !found {
    c.JSON(http.StatusNotFound, gin.H{"error": "clip not found"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"deleted": id})
}
