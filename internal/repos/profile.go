package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/yungbote/sunomirror-backend/internal/platform/logger"
  "github.com/yungbote/sunomirror-backend/internal/types"
)

type ProfileRepo interface {
  GetByHandle(ctx context.Context, tx *gorm.DB, handle string) (*types.Profile, error)
  GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Profile, error)
  GetAll(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Profile, error)
  Create(ctx context.Context, tx *gorm.DB, profile *types.Profile) error
  Delete(ctx context.Context, tx *gorm.DB, id string) error
}

type profileRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
  repoLog := baseLog.With("repo", "ProfileRepo")
  return &profileRepo{db: db, log: repoLog}
}

func (pr *profileRepo) GetByHandle(ctx context.Context, tx *gorm.DB, handle string) (*types.Profile, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var result types.Profile
  if err := transaction.WithContext(ctx).
    Preload("Clips").
    Preload("Playlists").
    Where("handle = ?", handle).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (pr *profileRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Profile, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var result types.Profile
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (pr *profileRepo) GetAll(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Profile, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.Profile
  if err := transaction.WithContext(ctx).
    Preload("Clips").
    Preload("Playlists").
    Offset(skip).
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *profileRepo) Create(ctx context.Context, tx *gorm.DB, profile *types.Profile) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }
  return transaction.WithContext(ctx).Create(profile).Error
}

// Delete removes the profile and everything hanging off it: clip
// memberships, clips, playlists, then the profile row. The database cascade
// constraints are the backstop; doing it explicitly keeps behavior identical
// across drivers.
func (pr *profileRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  session := transaction.WithContext(ctx)

  playlistIDs := session.Model(&types.Playlist{}).Select("id").Where("profile_id = ?", id)
  if err := session.Where("playlist_id IN (?)", playlistIDs).Delete(&types.PlaylistClip{}).Error; err != nil {
    return err
  }
  clipIDs := session.Model(&types.Clip{}).Select("id").Where("profile_id = ?", id)
  if err := session.Where("clip_id IN (?)", clipIDs).Delete(&types.PlaylistClip{}).Error; err != nil {
    return err
  }
  if err := session.Where("profile_id = ?", id).Delete(&types.Clip{}).Error; err != nil {
    return err
  }
  if err := session.Where("profile_id = ?", id).Delete(&types.Playlist{}).Error; err != nil {
    return err
  }
  return session.Where("id = ?", id).Delete(&types.Profile{}).Error
}
