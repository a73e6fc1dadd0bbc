package upstream

// Document is a raw upstream payload. The Suno API schema is a loose
// contract: only the fields this backend consumes are ever read, and every
// read tolerates a missing or mistyped value.
type Document map[string]any

// ProfileDoc is the typed projection of an upstream profile payload.
type ProfileDoc struct {
  ID                 string
  UserID             string
  Handle             string
  DisplayName        string
  ProfileDescription string
  AvatarImageURL     string
  Clips              []ClipDoc
  Playlists          []PlaylistDoc
}

// StorageID returns the id the profile row is keyed by: an explicit id
// field, else the upstream user id, else the handle. Different upstream
// endpoints populate different subsets of identifying fields.
func (p ProfileDoc) StorageID() string {
  if p.ID != "" {
    return p.ID
  }
  if p.UserID != "" {
    return p.UserID
  }
  return p.Handle
}

type ClipDoc struct {
  ID                string
  Title             string
  Status            string
  Caption           string
  Type              string
  Duration          string
  PlayCount         int
  UpvoteCount       int
  CommentCount      int
  FlagCount         int
  AudioURL          string
  VideoURL          string
  ImageURL          string
  ImageLargeURL     string
  Metadata          map[string]any
  EntityType        string
  MajorModelVersion string
  ModelName         string
  Priority          int
  BatchIndex        int
  UserID            string
  DisplayName       string
  Handle            string
  AvatarImageURL    string
  IsHandleUpdated   bool
  AllowComments     bool
  IsPublic          bool
  Explicit          bool
  IsTrashed         bool
  IsLiked           bool
  IsContestClip     bool
  HasHook           bool
  RefundCredits     bool
  Stream            bool
  MakeInstrumental  bool
  CanRemix          bool
  IsRemix           bool
  HasStem           bool
  VideoIsStale      bool
  UsesLatestModel   bool
  IsPinned          bool
}

type PlaylistDoc struct {
  ID                 string
  Name               string
  Description        string
  ImageURL           string
  UpvoteCount        int
  PlayCount          int
  SongCount          int
  DislikeCount       int
  FlagCount          int
  SkipCount          int
  NumTotalResults    int
  CurrentPage        int
  EntityType         string
  NextCursor         string
  IsOwned            bool
  IsPublic           bool
  IsTrashed          bool
  IsHidden           bool
  IsDiscoverPlaylist bool
  UserDisplayName    string
  UserHandle         string
  UserAvatarImageURL string
  Clips              []ClipDoc
}
