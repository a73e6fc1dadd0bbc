package types

import (
  "time"
)

// Playlist keeps a denormalized copy of the owner display fields because a
// playlist can be fetched before the owning profile exists locally.
type Playlist struct {
  ID          string  `gorm:"type:varchar(64);primaryKey;column:id" json:"id"`
  ProfileID   *string `gorm:"type:varchar(64);index;column:profile_id" json:"profile_id"`
  Name        string  `gorm:"column:name" json:"name"`
  Description string  `gorm:"type:text;column:description" json:"description"`
  ImageURL    string  `gorm:"column:image_url" json:"image_url"`

  UpvoteCount     int `gorm:"default:0;column:upvote_count" json:"upvote_count"`
  PlayCount       int `gorm:"default:0;column:play_count" json:"play_count"`
  SongCount       int `gorm:"default:0;column:song_count" json:"song_count"`
  DislikeCount    int `gorm:"default:0;column:dislike_count" json:"dislike_count"`
  FlagCount       int `gorm:"default:0;column:flag_count" json:"flag_count"`
  SkipCount       int `gorm:"default:0;column:skip_count" json:"skip_count"`
  NumTotalResults int `gorm:"default:0;column:num_total_results" json:"num_total_results"`
  CurrentPage     int `gorm:"default:0;column:current_page" json:"current_page"`

  EntityType string `gorm:"column:entity_type" json:"entity_type"`
  NextCursor string `gorm:"type:text;column:next_cursor" json:"next_cursor"`

  IsOwned            bool `gorm:"default:false;column:is_owned" json:"is_owned"`
  IsPublic           bool `gorm:"default:false;column:is_public" json:"is_public"`
  IsTrashed          bool `gorm:"default:false;column:is_trashed" json:"is_trashed"`
  IsHidden           bool `gorm:"default:false;column:is_hidden" json:"is_hidden"`
  IsDiscoverPlaylist bool `gorm:"default:false;column:is_discover_playlist" json:"is_discover_playlist"`

  UserDisplayName    string `gorm:"column:user_display_name" json:"user_display_name"`
  UserHandle         string `gorm:"column:user_handle" json:"user_handle"`
  UserAvatarImageURL string `gorm:"column:user_avatar_image_url" json:"user_avatar_image_url"`

  Profile *Profile `gorm:"foreignKey:ProfileID" json:"-"`
  Clips   []*Clip  `gorm:"many2many:playlist_clips;" json:"clips"`

  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Playlist) TableName() string {
  return "playlists"
}
