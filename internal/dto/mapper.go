package dto

import (
  "encoding/json"
  "fmt"

  "github.com/yungbote/sunomirror-backend/internal/platform/logger"
  "github.com/yungbote/sunomirror-backend/internal/types"
)

// Mapper converts persisted entities into response views. It is purely
// structural: a field that cannot be coerced is logged and replaced with a
// default so one malformed value never fails a whole list response.
type Mapper struct {
  log *logger.Logger
}

func NewMapper(baseLog *logger.Logger) *Mapper {
  return &Mapper{log: baseLog.With("component", "DTOMapper")}
}

func (m *Mapper) ProfileView(profile *types.Profile) *ProfileView {
  if profile == nil {
    return nil
  }
  view := &ProfileView{
    ID:                 profile.ID,
    Handle:             profile.Handle,
    DisplayName:        profile.DisplayName,
    ProfileDescription: profile.ProfileDescription,
    AvatarImageURL:     profile.AvatarImageURL,
    Clips:              []ClipSlimView{},
    Playlists:          []PlaylistSummaryView{},
  }
  for _, clip := range profile.Clips {
    if clip == nil {
      continue
    }
    view.Clips = append(view.Clips, m.clipSlimView(clip))
  }
  for _, playlist := range profile.Playlists {
    if playlist == nil {
      continue
    }
    view.Playlists = append(view.Playlists, PlaylistSummaryView{
      ID:          playlist.ID,
      Name:        playlist.Name,
      Handle:      profile.Handle,
      Description: playlist.Description,
      ImageURL:    playlist.ImageURL,
      SongCount:   playlist.SongCount,
    })
  }
  return view
}

func (m *Mapper) ClipView(clip *types.Clip) *ClipView {
  if clip == nil {
    return nil
  }
  return &ClipView{
    ID:                 clip.ID,
    Title:              clip.Title,
    Status:             clip.Status,
    AudioURL:           clip.AudioURL,
    VideoURL:           clip.VideoURL,
    ImageURL:           clip.ImageURL,
    ImageLargeURL:      clip.ImageLargeURL,
    Metadata:           m.metadataView(clip),
    Caption:            clip.Caption,
    Type:               clip.Type,
    Duration:           clip.Duration,
    PlayCount:          clip.PlayCount,
    UpvoteCount:        clip.UpvoteCount,
    UserID:             clip.UserID,
    DisplayName:        clip.DisplayName,
    Handle:             clip.Handle,
    UserAvatarImageURL: clip.AvatarImageURL,
  }
}

func (m *Mapper) PlaylistView(playlist *types.Playlist) *PlaylistView {
  if playlist == nil {
    return nil
  }
  view := &PlaylistView{
    ID:          playlist.ID,
    Name:        playlist.Name,
    Handle:      playlist.UserHandle,
    Description: playlist.Description,
    ImageURL:    playlist.ImageURL,
    Clips:       []ClipSlimView{},
  }
  if view.Handle == "" && playlist.Profile != nil {
    view.Handle = playlist.Profile.Handle
  }
  for _, clip := range playlist.Clips {
    if clip == nil {
      continue
    }
    view.Clips = append(view.Clips, m.clipSlimView(clip))
  }
  return view
}

func (m *Mapper) clipSlimView(clip *types.Clip) ClipSlimView {
  return ClipSlimView{
    ID:       clip.ID,
    Title:    clip.Title,
    AudioURL: clip.AudioURL,
    VideoURL: clip.VideoURL,
    ImageURL: clip.ImageURL,
    Metadata: m.metadataView(clip),
  }
}

// metadataView projects the stored metadata blob down to the three fields
// clients consume. Duration inside the blob is stringified the same way the
// column is.
func (m *Mapper) metadataView(clip *types.Clip) *MetadataView {
  if len(clip.Metadata) == 0 {
    return nil
  }
  var blob map[string]any
  if err := json.Unmarshal(clip.Metadata, &blob); err != nil {
    m.log.Warn("Clip metadata blob could not be decoded", "clip_id", clip.ID, "error", err)
    return nil
  }
  return &MetadataView{
    Tags:     coerceString(blob["tags"]),
    Prompt:   coerceString(blob["prompt"]),
    Duration: coerceString(blob["duration"]),
  }
}

func coerceString(v any) string {
  if v == nil {
    return ""
  }
  switch t := v.(type) {
  case string:
    return t
  case float64:
    if t == float64(int64(t)) {
      return fmt.Sprintf("%d", int64(t))
    }
    return fmt.Sprintf("%g", t)
  case bool:
    return fmt.Sprintf("%t", t)
  default:
    return fmt.Sprint(t)
  }
}
