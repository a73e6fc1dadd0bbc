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

type PlaylistService interface {
	GetByID(ctx context.Context, id string) (*dto.PlaylistView, error)
	GetAll(ctx context.Context, skip, limit int) ([]*dto.PlaylistView, error)
	Delete(ctx context.Context, id string) (bool, error)
	SavePlaylistGraph(ctx context.Context, doc upstream.Document) (*types.Playlist, error)
}

type playlistService struct {
	db           *gorm.DB
	log          *logger.Logger
	playlistRepo repos.PlaylistRepo
	clipRepo     repos.ClipRepo
	sunoClient   suno.Client
	mapper       *dto.Mapper
}

func NewPlaylistService(db *gorm.DB, log *logger.Logger, playlistRepo repos.PlaylistRepo, clipRepo repos.ClipRepo, sunoClient suno.Client, mapper *dto.Mapper) PlaylistService {
	serviceLog := log.With("service", "PlaylistService")
	return &playlistService{
		db:           db,
		log:          serviceLog,
		playlistRepo: playlistRepo,
		clipRepo:     clipRepo,
		sunoClient:   sunoClient,
		mapper:       mapper,
	}
}

func (pls *playlistService) GetByID(ctx context.Context, id string) (*dto.PlaylistView, error) {
	playlist, err := pls.playlistRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching playlist: %w", err)
	}

	// A playlist with no clips is treated like a miss: either it was created
	// as a stub from a profile fetch or upstream really has an empty list,
	// and one refetch settles which.
	if playlist != nil && len(playlist.Clips) > 0 {
		return pls.mapper.PlaylistView(playlist), nil
	}

	pls.log.Info("Playlist missing or empty, fetching upstream", "playlist_id", id)
	result := pls.sunoClient.FetchPlaylist(ctx, id)
	if result.Empty() {
		if result.Unavailable {
			pls.log.Warn("Upstream unavailable for playlist, serving local state", "playlist_id", id)
		}
		return pls.mapper.PlaylistView(playlist), nil
	}

	saved, err := pls.SavePlaylistGraph(ctx, result.Doc)
	if err != nil {
		return nil, err
	}
	return pls.mapper.PlaylistView(saved), nil
}

func (pls *playlistService) GetAll(ctx context.Context, skip, limit int) ([]*dto.PlaylistView, error) {
	playlists, err := pls.playlistRepo.GetAll(ctx, nil, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing playlists: %w", err)
	}
	views := make([]*dto.PlaylistView, 0, len(playlists))
	for _, playlist := range playlists {
		views = append(views, pls.mapper.PlaylistView(playlist))
	}
	return views, nil
}

func (pls *playlistService) Delete(ctx context.Context, id string) (bool, error) {
	playlist, err := pls.playlistRepo.GetByID(ctx, nil, id)
	if err != nil {
		return false, err
	}
	if playlist == nil {
		return false, nil
	}
	if err := pls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return pls.playlistRepo.Delete(ctx, tx, id)
	}); err != nil {
		return false, err
	}
	pls.log.Info("Playlist deleted", "playlist_id", id)
	return true, nil
}

// SavePlaylistGraph upserts a standalone playlist document. Unlike the
// profile path it refreshes scalar fields when the row already exists, but
// it never assigns or moves the owner: a direct playlist fetch carries no
// authority over ownership.
func (pls *playlistService) SavePlaylistGraph(ctx context.Context, doc upstream.Document) (*types.Playlist, error) {
	parsed := upstream.ParsePlaylist(doc)
	if parsed.ID == "" {
		return nil, fmt.Errorf("playlist document has no id")
	}

	if err := pls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := pls.playlistRepo.GetByID(ctx, tx, parsed.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			if err := pls.playlistRepo.Create(ctx, tx, newPlaylistRow(parsed, nil, "")); err != nil {
				return fmt.Errorf("error creating playlist %q: %w", parsed.ID, err)
			}
		} else {
			if err := pls.playlistRepo.UpdateScalars(ctx, tx, parsed.ID, playlistScalarUpdates(doc, parsed)); err != nil {
				return fmt.Errorf("error refreshing playlist %q: %w", parsed.ID, err)
			}
		}

		for index, clipDoc := range parsed.Clips {
			if clipDoc.ID == "" {
				continue
			}
			clip, err := pls.clipRepo.GetByID(ctx, tx, clipDoc.ID)
			if err != nil {
				return err
			}
			if clip == nil {
				clip = newClipRow(clipDoc, nil)
				if err := pls.clipRepo.Create(ctx, tx, clip); err != nil {
					return fmt.Errorf("error creating clip %q: %w", clipDoc.ID, err)
				}
			}
			member, err := pls.playlistRepo.HasClip(ctx, tx, parsed.ID, clip.ID)
			if err != nil {
				return err
			}
			if !member {
				if err := pls.playlistRepo.AddClip(ctx, tx, parsed.ID, clip.ID, index); err != nil {
					return fmt.Errorf("error attaching clip %q to playlist %q: %w", clip.ID, parsed.ID, err)
				}
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return pls.playlistRepo.GetByID(ctx, nil, parsed.ID)
}
