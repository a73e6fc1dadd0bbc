package upstream

import (
  "encoding/json"
  "fmt"
  "strings"
)

// ParseProfile projects a raw profile document onto ProfileDoc. Each field
// is extracted permissively: missing or mistyped values fall back to the
// zero value so one malformed field never poisons the whole document.
func ParseProfile(doc Document) ProfileDoc {
  p := ProfileDoc{
    ID:                 docStr(doc, "id"),
    UserID:             docStr(doc, "user_id"),
    Handle:             docStr(doc, "handle"),
    DisplayName:        docStr(doc, "display_name"),
    ProfileDescription: docStr(doc, "profile_description"),
    AvatarImageURL:     docStr(doc, "avatar_image_url"),
  }
  for _, raw := range docList(doc, "clips") {
    c := ParseClip(raw)
    if c.ID == "" {
      continue
    }
    p.Clips = append(p.Clips, c)
  }
  for _, raw := range docList(doc, "playlists") {
    pl := ParsePlaylist(raw)
    if pl.ID == "" {
      continue
    }
    p.Playlists = append(p.Playlists, pl)
  }
  return p
}

func ParseClip(doc Document) ClipDoc {
  return ClipDoc{
    ID:                docStr(doc, "id"),
    Title:             docStr(doc, "title"),
    Status:            docStr(doc, "status"),
    Caption:           docStr(doc, "caption"),
    Type:              docStr(doc, "type"),
    Duration:          docDuration(doc, "duration"),
    PlayCount:         docInt(doc, "play_count"),
    UpvoteCount:       docInt(doc, "upvote_count"),
    CommentCount:      docInt(doc, "comment_count"),
    FlagCount:         docInt(doc, "flag_count"),
    AudioURL:          docStr(doc, "audio_url"),
    VideoURL:          docStr(doc, "video_url"),
    ImageURL:          docStr(doc, "image_url"),
    ImageLargeURL:     docStr(doc, "image_large_url"),
    Metadata:          docMap(doc, "metadata"),
    EntityType:        docStr(doc, "entity_type"),
    MajorModelVersion: docStr(doc, "major_model_version"),
    ModelName:         docStr(doc, "model_name"),
    Priority:          docInt(doc, "priority"),
    BatchIndex:        docInt(doc, "batch_index"),
    UserID:            docStr(doc, "user_id"),
    DisplayName:       docStr(doc, "display_name"),
    Handle:            docStr(doc, "handle"),
    AvatarImageURL:    docStr(doc, "avatar_image_url"),
    IsHandleUpdated:   docBool(doc, "is_handle_updated"),
    AllowComments:     docBool(doc, "allow_comments"),
    IsPublic:          docBool(doc, "is_public"),
    Explicit:          docBool(doc, "explicit"),
    IsTrashed:         docBool(doc, "is_trashed"),
    IsLiked:           docBool(doc, "is_liked"),
    IsContestClip:     docBool(doc, "is_contest_clip"),
    HasHook:           docBool(doc, "has_hook"),
    RefundCredits:     docBool(doc, "refund_credits"),
    Stream:            docBool(doc, "stream"),
    MakeInstrumental:  docBool(doc, "make_instrumental"),
    CanRemix:          docBool(doc, "can_remix"),
    IsRemix:           docBool(doc, "is_remix"),
    HasStem:           docBool(doc, "has_stem"),
    VideoIsStale:      docBool(doc, "video_is_stale"),
    UsesLatestModel:   docBool(doc, "uses_latest_model"),
    IsPinned:          docBool(doc, "is_pinned"),
  }
}

// ParsePlaylist accepts both nesting shapes upstream uses for playlist
// members: a direct "clips" list of clip objects, or a "playlist_clips"
// list of wrappers each holding a nested "clip" object.
func ParsePlaylist(doc Document) PlaylistDoc {
  p := PlaylistDoc{
    ID:                 docStr(doc, "id"),
    Name:               docStr(doc, "name"),
    Description:        docStr(doc, "description"),
    ImageURL:           docStr(doc, "image_url"),
    UpvoteCount:        docInt(doc, "upvote_count"),
    PlayCount:          docInt(doc, "play_count"),
    SongCount:          docInt(doc, "song_count"),
    DislikeCount:       docInt(doc, "dislike_count"),
    FlagCount:          docInt(doc, "flag_count"),
    SkipCount:          docInt(doc, "skip_count"),
    NumTotalResults:    docInt(doc, "num_total_results"),
    CurrentPage:        docInt(doc, "current_page"),
    EntityType:         docStr(doc, "entity_type"),
    NextCursor:         docStr(doc, "next_cursor"),
    IsOwned:            docBool(doc, "is_owned"),
    IsPublic:           docBool(doc, "is_public"),
    IsTrashed:          docBool(doc, "is_trashed"),
    IsHidden:           docBool(doc, "is_hidden"),
    IsDiscoverPlaylist: docBool(doc, "is_discover_playlist"),
    UserDisplayName:    docStr(doc, "user_display_name"),
    UserHandle:         docStr(doc, "user_handle"),
    UserAvatarImageURL: docStr(doc, "user_avatar_image_url"),
  }

  entries := docList(doc, "playlist_clips")
  if len(entries) == 0 {
    entries = docList(doc, "clips")
  }
  for _, entry := range entries {
    clipDoc := entry
    if nested := docMap(entry, "clip"); nested != nil {
      clipDoc = nested
    }
    c := ParseClip(clipDoc)
    if c.ID == "" {
      continue
    }
    p.Clips = append(p.Clips, c)
  }
  return p
}

func docStr(doc Document, key string) string {
  v, ok := doc[key]
  if !ok || v == nil {
    return ""
  }
  switch t := v.(type) {
  case string:
    return t
  case float64:
    return trimFloat(t)
  case bool:
    if t {
      return "true"
    }
    return "false"
  case json.Number:
    return t.String()
  default:
    return ""
  }
}

// docDuration stringifies a duration that upstream sends as either a number
// or a string, so downstream consumers always see one type.
func docDuration(doc Document, key string) string {
  v, ok := doc[key]
  if !ok || v == nil {
    return ""
  }
  switch t := v.(type) {
  case string:
    return t
  case float64:
    return trimFloat(t)
  case int:
    return fmt.Sprintf("%d", t)
  case json.Number:
    return t.String()
  default:
    return ""
  }
}

func docInt(doc Document, key string) int {
  v, ok := doc[key]
  if !ok || v == nil {
    return 0
  }
  switch t := v.(type) {
  case float64:
    return int(t)
  case int:
    return t
  case int64:
    return int(t)
  case json.Number:
    if i64, err := t.Int64(); err == nil {
      return int(i64)
    }
    return 0
  case string:
    s := strings.TrimSpace(t)
    if s == "" {
      return 0
    }
    if i64, err := json.Number(s).Int64(); err == nil {
      return int(i64)
    }
    return 0
  default:
    return 0
  }
}

func docBool(doc Document, key string) bool {
  v, ok := doc[key]
  if !ok || v == nil {
    return false
  }
  b, ok := v.(bool)
  if !ok {
    return false
  }
  return b
}

func docMap(doc Document, key string) Document {
  v, ok := doc[key]
  if !ok || v == nil {
    return nil
  }
  m, ok := v.(map[string]any)
  if !ok {
    return nil
  }
  return m
}

func docList(doc Document, key string) []Document {
  v, ok := doc[key]
  if !ok || v == nil {
    return nil
  }
  arr, ok := v.([]any)
  if !ok {
    return nil
  }
  out := make([]Document, 0, len(arr))
  for _, item := range arr {
    if m, ok := item.(map[string]any); ok {
      out = append(out, m)
    }
  }
  return out
}

func trimFloat(f float64) string {
  s := fmt.Sprintf("%f", f)
  if strings.Contains(s, ".") {
    s = strings.TrimRight(s, "0")
    s = strings.TrimRight(s, ".")
  }
  return s
}
