package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/yungbote/sunomirror-backend/internal/platform/logger"
  "github.com/yungbote/sunomirror-backend/internal/types"
)

type ClipRepo interface {
  GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Clip, error)
  GetAll(ctx context.Context, tx *gorm.DB, page, size int) ([]*types.Clip, error)
  Create(ctx context.Context, tx *gorm.DB, clip *types.Clip) error
  ClaimOwner(ctx context.Context, tx *gorm.DB, clipID, profileID string) error
  Delete(ctx context.Context, tx *gorm.DB, id string) error
}

type clipRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewClipRepo(db *gorm.DB, baseLog *logger.Logger) ClipRepo {
  repoLog := baseLog.With("repo", "ClipRepo")
  return &clipRepo{db: db, log: repoLog}
}

func (cr *clipRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Clip, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var result types.Clip
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

func (cr *clipRepo) GetAll(ctx context.Context, tx *gorm.DB, page, size int) ([]*types.Clip, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.Clip
  if err := transaction.WithContext(ctx).
    Offset(page * size).
    Limit(size).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *clipRepo) Create(ctx context.Context, tx *gorm.DB, clip *types.Clip) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  return transaction.WithContext(ctx).Create(clip).Error
}

// ClaimOwner attaches a clip to a profile only while the clip is unowned.
// The WHERE clause makes the claim first-writer-wins even under concurrent
// upserts; ownership is never reassigned once set.
func (cr *clipRepo) ClaimOwner(ctx context.Context, tx *gorm.DB, clipID, profileID string) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  return transaction.WithContext(ctx).
    Model(&types.Clip{}).
    Where("id = ? AND profile_id IS NULL", clipID).
    Update("profile_id", profileID).Error
}

func (cr *clipRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  session := transaction.WithContext(ctx)
  if err := session.Where("clip_id = ?", id).Delete(&types.PlaylistClip{}).Error; err != nil {
    return err
  }
  return session.Where("id = ?", id).Delete(&types.Clip{}).Error
}
