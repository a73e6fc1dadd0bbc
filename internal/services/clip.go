package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/sunomirror-backend/internal/clients/suno"
	"github.com/yungbote/sunomirror-backend/internal/dto"
	"github.com/yungbote/sunomirror-backend/internal/platform/logger"
	"github.com/yungbote/sunomirror-backend/internal/repos"
	"github.com/yungbote/sunomirror-backend/internal/types"
	"github.com/yungbote/sunomirror-backend/internal/upstream"
)

type ClipService interface {
	GetByID(ctx context.Context, id string) (*dto.ClipView, error)
	GetAll(ctx context.Context, page, size int) ([]*dto.ClipView, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type clipService struct {
	db         *gorm.DB
	log        *logger.Logger
	clipRepo   repos.ClipRepo
	sunoClient suno.Client
	mapper     *dto.Mapper
}

func NewClipService(db *gorm.DB, log *logger.Logger, clipRepo repos.ClipRepo, sunoClient suno.Client, mapper *dto.Mapper) ClipService {
	serviceLog := log.With("service", "ClipService")
	return &clipService{
		db:         db,
		log:        serviceLog,
		clipRepo:   clipRepo,
		sunoClient: sunoClient,
		mapper:     mapper,
	}
}

func (cs *clipService) GetByID(ctx context.Context, id string) (*dto.ClipView, error) {
	clip, err := cs.clipRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching clip: %w", err)
	}
	if clip != nil {
		return cs.mapper.ClipView(clip), nil
	}

	cs.log.Info("Clip not found locally, fetching upstream", "clip_id", id)
	result := cs.sunoClient.FetchClip(ctx, id)
	if result.Empty() {
		if result.Unavailable {
			cs.log.Warn("Upstream unavailable for clip", "clip_id", id)
		}
		return nil, nil
	}

	saved, err := cs.saveClip(ctx, result.Doc)
	if err != nil {
		return nil, err
	}
	return cs.mapper.ClipView(saved), nil
}

// saveClip upserts a single clip with no owner attached. Ownership is only
// ever established through a profile fetch, so a clip that arrives on its
// own stays an orphan until some profile claims it.
func (cs *clipService) saveClip(ctx context.Context, doc upstream.Document) (*types.Clip, error) {
	parsed := upstream.ParseClip(doc)
	if parsed.ID == "" {
		return nil, fmt.Errorf("clip document has no id")
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := cs.clipRepo.GetByID(ctx, tx, parsed.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}
		return cs.clipRepo.Create(ctx, tx, newClipRow(parsed, nil))
	}); err != nil {
		return nil, err
	}

	return cs.clipRepo.GetByID(ctx, nil, parsed.ID)
}

func (cs *clipService) GetAll(ctx context.Context, page, size int) ([]*dto.ClipView, error) {
	clips, err := cs.clipRepo.GetAll(ctx, nil, page, size)
	if err != nil {
		return nil, fmt.Errorf("error listing clips: %w", err)
	}
	views := make([]*dto.ClipView, 0, len(clips))
	for _, clip := range clips {
		views = append(views, cs.mapper.ClipView(clip))
	}
	return views, nil
}

func (cs *clipService) Delete(ctx context.Context, id string) (bool, error) {
	clip, err := cs.clipRepo.GetByID(ctx, nil, id)
	if err != nil {
		return false, err
	}
	if clip == nil {
		return false, nil
	}
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return cs.clipRepo.Delete(ctx, tx, id)
	}); err != nil {
		return false, err
	}
	cs.log.Info("Clip deleted", "clip_id", id)
	return true, nil
}
