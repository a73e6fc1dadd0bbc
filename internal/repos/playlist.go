package repos

import (
  "context"
  "errors"
  "time"

  "gorm.io/gorm"
  "github.com/yungbote/sunomirror-backend/internal/platform/logger"
  "github.com/yungbote/sunomirror-backend/internal/types"
)

type PlaylistRepo interface {
  GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Playlist, error)
  GetAll(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Playlist, error)
  Create(ctx context.Context, tx *gorm.DB, playlist *types.Playlist) error
  UpdateScalars(ctx context.Context, tx *gorm.DB, id string, updates map[string]any) error
  ClaimOwner(ctx context.Context, tx *gorm.DB, playlistID, profileID string) error
  HasClip(ctx context.Context, tx *gorm.DB, playlistID, clipID string) (bool, error)
  AddClip(ctx context.Context, tx *gorm.DB, playlistID, clipID string, relativeIndex int) error
  Delete(ctx context.Context, tx *gorm.DB, id string) error
}

type playlistRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

// orderByRelativeIndex makes member preloads honor the position recorded on
// the membership row instead of driver-dependent row order.
func orderByRelativeIndex(db *gorm.DB) *gorm.DB {
  return db.Order("playlist_clips.relative_index")
}

func NewPlaylistRepo(db *gorm.DB, baseLog *logger.Logger) PlaylistRepo {
  repoLog := baseLog.With("repo", "PlaylistRepo")
  return &playlistRepo{db: db, log: repoLog}
}

func (plr *playlistRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Playlist, error) {
  transaction := tx
  if transaction == nil {
    transaction = plr.db
  }

  var result types.Playlist
  if err := transaction.WithContext(ctx).
    Preload("Clips", orderByRelativeIndex).
    Preload("Profile").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (plr *playlistRepo) GetAll(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Playlist, error) {
  transaction := tx
  if transaction == nil {
    transaction = plr.db
  }

  var results []*types.Playlist
  if err := transaction.WithContext(ctx).
    Preload("Clips", orderByRelativeIndex).
    Preload("Profile").
    Offset(skip).
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (plr *playlistRepo) Create(ctx context.Context, tx *gorm.DB, playlist *types.Playlist) error {
  transaction := tx
  if transaction == nil {
    transaction = plr.db
  }
  return transaction.WithContext(ctx).Omit("Clips", "Profile").Create(playlist).Error
}

// UpdateScalars refreshes scalar columns from a re-fetched document. The
// caller supplies only the columns the document actually carried, so a
// partial payload never blanks stored values. The owner foreign key is
// deliberately not part of the update: a re-fetch never nulls or moves an
// already-claimed playlist.
func (plr *playlistRepo) UpdateScalars(ctx context.Context, tx *gorm.DB, id string, updates map[string]any) error {
  transaction := tx
  if transaction == nil {
    transaction = plr.db
  }
  if len(updates) == 0 {
    return nil
  }
  delete(updates, "profile_id")
  updates["updated_at"] = time.Now().UTC()
  return transaction.WithContext(ctx).
    Model(&types.Playlist{}).
    Where("id = ?", id).
    Updates(updates).Error
}

// ClaimOwner works like the clip version: first profile to reference an
// unowned playlist becomes its owner, and the claim is never overwritten.
func (plr *playlistRepo) ClaimOwner(ctx context.Context, tx *gorm.DB, playlistID, profileID string) error {
  transaction := tx
  if transaction == nil {
    transaction = plr.db
  }
  return transaction.WithContext(ctx).
    Model(&types.Playlist{}).
    Where("id = ? AND profile_id IS NULL", playlistID).
    Update("profile_id", profileID).Error
}

func (plr *playlistRepo) HasClip(ctx context.Context, tx *gorm.DB, playlistID, clipID string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = plr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.PlaylistClip{}).
    Where("playlist_id = ? AND clip_id = ?", playlistID, clipID).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (plr *playlistRepo) AddClip(ctx context.Context, tx *gorm.DB, playlistID, clipID string, relativeIndex int) error {
  transaction := tx
  if transaction == nil {
    transaction = plr.db
  }
  row := &types.PlaylistClip{
    PlaylistID:    playlistID,
    ClipID:        clipID,
    RelativeIndex: relativeIndex,
    AddedAt:       time.Now().UTC(),
  }
  return transaction.WithContext(ctx).Create(row).Error
}

func (plr *playlistRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
  transaction := tx
  if transaction == nil {
    transaction = plr.db
  }
  session := transaction.WithContext(ctx)
  if err := session.Where("playlist_id = ?", id).Delete(&types.PlaylistClip{}).Error; err != nil {
    return err
  }
  return session.Where("id = ?", id).Delete(&types.Playlist{}).Error
}
