package types

import (
  "time"
)

// PlaylistClip is the playlist membership row. The composite primary key is
// the database-level backstop against duplicate membership; RelativeIndex
// records the clip's position within the playlist document it arrived in.
type PlaylistClip struct {
  PlaylistID    string    `gorm:"type:varchar(64);primaryKey;column:playlist_id" json:"playlist_id"`
  ClipID        string    `gorm:"type:varchar(64);primaryKey;column:clip_id" json:"clip_id"`
  RelativeIndex int       `gorm:"default:0;column:relative_index" json:"relative_index"`
  AddedAt       time.Time `gorm:"not null" json:"added_at"`
}

func (PlaylistClip) TableName() string {
  return "playlist_clips"
}
