package dto

// Response shapes served by the API layer. Every field is a plain value;
// the mapper owns all coercion from entity columns.

type MetadataView struct {
  Tags     string `json:"tags,omitempty"`
  Prompt   string `json:"prompt,omitempty"`
  Duration string `json:"duration,omitempty"`
}

type ClipSlimView struct {
  ID       string        `json:"id"`
  Title    string        `json:"title"`
  AudioURL string        `json:"audio_url,omitempty"`
  VideoURL string        `json:"video_url,omitempty"`
  ImageURL string        `json:"image_url,omitempty"`
  Metadata *MetadataView `json:"metadata,omitempty"`
}

type ClipView struct {
  ID                 string        `json:"id"`
  Title              string        `json:"title"`
  Status             string        `json:"status,omitempty"`
  AudioURL           string        `json:"audio_url,omitempty"`
  VideoURL           string        `json:"video_url,omitempty"`
  ImageURL           string        `json:"image_url,omitempty"`
  ImageLargeURL      string        `json:"image_large_url,omitempty"`
  Metadata           *MetadataView `json:"metadata,omitempty"`
  Caption            string        `json:"caption,omitempty"`
  Type               string        `json:"type,omitempty"`
  Duration           string        `json:"duration,omitempty"`
  PlayCount          int           `json:"play_count"`
  UpvoteCount        int           `json:"upvote_count"`
  UserID             string        `json:"user_id,omitempty"`
  DisplayName        string        `json:"display_name,omitempty"`
  Handle             string        `json:"handle,omitempty"`
  UserAvatarImageURL string        `json:"user_avatar_image_url,omitempty"`
}

type PlaylistSummaryView struct {
  ID          string `json:"id"`
  Name        string `json:"name"`
  Handle      string `json:"handle"`
  Description string `json:"description,omitempty"`
  ImageURL    string `json:"image_url,omitempty"`
  SongCount   int    `json:"song_count"`
}

type PlaylistView struct {
  ID          string         `json:"id"`
  Name        string         `json:"name"`
  Handle      string         `json:"handle"`
  Description string         `json:"description,omitempty"`
  ImageURL    string         `json:"image_url,omitempty"`
  Clips       []ClipSlimView `json:"clips"`
}

type ProfileView struct {
  ID                 string                `json:"id"`
  Handle             string                `json:"handle"`
  DisplayName        string                `json:"display_name"`
  ProfileDescription string                `json:"profile_description,omitempty"`
  AvatarImageURL     string                `json:"avatar_image_url,omitempty"`
  Clips              []ClipSlimView        `json:"clips"`
  Playlists          []PlaylistSummaryView `json:"playlists"`
}
