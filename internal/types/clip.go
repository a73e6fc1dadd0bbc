package types

import (
  "time"

  "gorm.io/datatypes"
)

// Clip is a single generated artifact. ProfileID is nullable because a clip
// can be fetched standalone before its owner profile exists locally; the
// first profile to reference it claims ownership and it is never reassigned.
type Clip struct {
  ID        string  `gorm:"type:varchar(64);primaryKey;column:id" json:"id"`
  ProfileID *string `gorm:"type:varchar(64);index;column:profile_id" json:"profile_id"`
  Title     string  `gorm:"column:title" json:"title"`
  Status    string  `gorm:"column:status" json:"status"`
  Caption   string  `gorm:"type:text;column:caption" json:"caption"`
  Type      string  `gorm:"column:type" json:"type"`

  // Upstream sends duration as either a number or a string; it is stored
  // normalized to a string.
  Duration string `gorm:"column:duration" json:"duration"`

  PlayCount    int `gorm:"default:0;column:play_count" json:"play_count"`
  UpvoteCount  int `gorm:"default:0;column:upvote_count" json:"upvote_count"`
  CommentCount int `gorm:"default:0;column:comment_count" json:"comment_count"`
  FlagCount    int `gorm:"default:0;column:flag_count" json:"flag_count"`

  AudioURL      string `gorm:"column:audio_url" json:"audio_url"`
  VideoURL      string `gorm:"column:video_url" json:"video_url"`
  ImageURL      string `gorm:"column:image_url" json:"image_url"`
  ImageLargeURL string `gorm:"column:image_large_url" json:"image_large_url"`

  Metadata datatypes.JSON `gorm:"column:metadata" json:"metadata"`

  EntityType        string `gorm:"column:entity_type" json:"entity_type"`
  MajorModelVersion string `gorm:"column:major_model_version" json:"major_model_version"`
  ModelName         string `gorm:"column:model_name" json:"model_name"`
  Priority          int    `gorm:"default:0;column:priority" json:"priority"`
  BatchIndex        int    `gorm:"default:0;column:batch_index" json:"batch_index"`

  // Creator fields copied verbatim from the upstream clip document.
  UserID          string `gorm:"column:user_id" json:"user_id"`
  DisplayName     string `gorm:"column:display_name" json:"display_name"`
  Handle          string `gorm:"column:handle" json:"handle"`
  AvatarImageURL  string `gorm:"column:avatar_image_url" json:"avatar_image_url"`
  IsHandleUpdated bool   `gorm:"default:false;column:is_handle_updated" json:"is_handle_updated"`

  AllowComments   bool `gorm:"default:false;column:allow_comments" json:"allow_comments"`
  IsPublic        bool `gorm:"default:false;column:is_public" json:"is_public"`
  Explicit        bool `gorm:"default:false;column:explicit" json:"explicit"`
  IsTrashed       bool `gorm:"default:false;column:is_trashed" json:"is_trashed"`
  IsLiked         bool `gorm:"default:false;column:is_liked" json:"is_liked"`
  IsContestClip   bool `gorm:"default:false;column:is_contest_clip" json:"is_contest_clip"`
  HasHook         bool `gorm:"default:false;column:has_hook" json:"has_hook"`
  RefundCredits   bool `gorm:"default:false;column:refund_credits" json:"refund_credits"`
  Stream          bool `gorm:"default:false;column:stream" json:"stream"`
  MakeInstrumental bool `gorm:"default:false;column:make_instrumental" json:"make_instrumental"`
  CanRemix        bool `gorm:"default:false;column:can_remix" json:"can_remix"`
  IsRemix         bool `gorm:"default:false;column:is_remix" json:"is_remix"`
  HasStem         bool `gorm:"default:false;column:has_stem" json:"has_stem"`
  VideoIsStale    bool `gorm:"default:false;column:video_is_stale" json:"video_is_stale"`
  UsesLatestModel bool `gorm:"default:false;column:uses_latest_model" json:"uses_latest_model"`
  IsPinned        bool `gorm:"default:false;column:is_pinned" json:"is_pinned"`

  Profile   *Profile    `gorm:"foreignKey:ProfileID" json:"-"`
  Playlists []*Playlist `gorm:"many2many:playlist_clips;" json:"-"`

  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Clip) TableName() string {
  return "clips"
}
