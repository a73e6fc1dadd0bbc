package types

import (
  "time"
)

// Profile mirrors a Suno creator account. The handle is the stable
// human-facing identity used in API routes; upstream ids vary by endpoint.
type Profile struct {
  ID                 string      `gorm:"type:varchar(64);primaryKey;column:id" json:"id"`
  Handle             string      `gorm:"uniqueIndex;not null;column:handle" json:"handle"`
  DisplayName        string      `gorm:"column:display_name" json:"display_name"`
  ProfileDescription string      `gorm:"type:text;column:profile_description" json:"profile_description"`
  AvatarImageURL     string      `gorm:"column:avatar_image_url" json:"avatar_image_url"`
  Clips              []*Clip     `gorm:"foreignKey:ProfileID" json:"clips"`
  Playlists          []*Playlist `gorm:"foreignKey:ProfileID" json:"playlists"`
  CreatedAt          time.Time   `gorm:"not null" json:"created_at"`
  UpdatedAt          time.Time   `gorm:"not null" json:"updated_at"`
}

func (Profile) TableName() string {
  return "profiles"
}
