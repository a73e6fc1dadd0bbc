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

// ProfileService reconciles profile lookups against the local store and the
// upstream API. A nil view with a nil error means not found; that is the
// expected miss path, not an error.
type ProfileService interface {
	GetByHandle(ctx context.Context, handle string) (*dto.ProfileView, error)
	GetAll(ctx context.Context, skip, limit int) ([]*dto.ProfileView, error)
	Delete(ctx context.Context, id string) (bool, error)
	SaveProfileGraph(ctx context.Context, doc upstream.Document) (*types.Profile, error)
}

type profileService struct {
	db           *gorm.DB
	log          *logger.Logger
	profileRepo  repos.ProfileRepo
	clipRepo     repos.ClipRepo
	playlistRepo repos.PlaylistRepo
	sunoClient   suno.Client
	mapper       *dto.Mapper
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.ProfileRepo, clipRepo repos.ClipRepo, playlistRepo repos.PlaylistRepo, sunoClient suno.Client, mapper *dto.Mapper) ProfileService {
	serviceLog := log.With("service", "ProfileService")
	return &profileService{
		db:           db,
		log:          serviceLog,
		profileRepo:  profileRepo,
		clipRepo:     clipRepo,
		playlistRepo: playlistRepo,
		sunoClient:   sunoClient,
		mapper:       mapper,
	}
}

func (ps *profileService) GetByHandle(ctx context.Context, handle string) (*dto.ProfileView, error) {
	profile, err := ps.profileRepo.GetByHandle(ctx, nil, handle)
	if err != nil {
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}

	if profile == nil {
		ps.log.Info("Profile not found locally, fetching upstream", "handle", handle)
		refreshed, err := ps.refreshFromUpstream(ctx, handle)
		if err != nil {
			return nil, err
		}
		return ps.mapper.ProfileView(refreshed), nil
	}

	// A profile row can exist with empty collections when it was created as
	// a side effect of a clip or playlist fetch. Treat that as incomplete
	// and refresh once; a profile that truly has nothing keeps refetching,
	// which is the accepted cost of never serving a permanently hollow row.
	if len(profile.Clips) == 0 || len(profile.Playlists) == 0 {
		ps.log.Info("Profile under-populated, refreshing from upstream", "handle", handle, "clips", len(profile.Clips), "playlists", len(profile.Playlists))
		refreshed, err := ps.refreshFromUpstream(ctx, handle)
		if err != nil {
			return nil, err
		}
		if refreshed != nil {
			profile = refreshed
		}
	}

	return ps.mapper.ProfileView(profile), nil
}

// refreshFromUpstream performs exactly one upstream fetch. An empty result
// leaves local state untouched and returns nil.
func (ps *profileService) refreshFromUpstream(ctx context.Context, handle string) (*types.Profile, error) {
	result := ps.sunoClient.FetchProfile(ctx, handle)
	if result.Empty() {
		if result.Unavailable {
			ps.log.Warn("Upstream unavailable for profile, serving local state", "handle", handle)
		} else {
			ps.log.Info("Upstream has no data for profile", "handle", handle)
		}
		return nil, nil
	}
	return ps.SaveProfileGraph(ctx, result.Doc)
}

func (ps *profileService) GetAll(ctx context.Context, skip, limit int) ([]*dto.ProfileView, error) {
	profiles, err := ps.profileRepo.GetAll(ctx, nil, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing profiles: %w", err)
	}
	views := make([]*dto.ProfileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, ps.mapper.ProfileView(profile))
	}
	return views, nil
}

func (ps *profileService) Delete(ctx context.Context, id string) (bool, error) {
	profile, err := ps.profileRepo.GetByID(ctx, nil, id)
	if err != nil {
		return false, err
	}
	if profile == nil {
		return false, nil
	}
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return ps.profileRepo.Delete(ctx, tx, id)
	}); err != nil {
		return false, err
	}
	ps.log.Info("Profile deleted", "profile_id", id)
	return true, nil
}

// SaveProfileGraph upserts an upstream profile document and everything
// embedded in it: the profile row, its clips, its playlists, and playlist
// memberships. Keyed lookups before every insert make the whole operation
// idempotent; on any failure the transaction rolls back and the next lookup
// retries from scratch.
func (ps *profileService) SaveProfileGraph(ctx context.Context, doc upstream.Document) (*types.Profile, error) {
	parsed := upstream.ParseProfile(doc)
	if parsed.Handle == "" {
		return nil, fmt.Errorf("profile document has no handle")
	}

	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := ps.profileRepo.GetByHandle(ctx, tx, parsed.Handle)
		if err != nil {
			return err
		}
		if profile == nil {
			profile = newProfileRow(parsed)
			if err := ps.profileRepo.Create(ctx, tx, profile); err != nil {
				return fmt.Errorf("error creating profile %q: %w", parsed.Handle, err)
			}
		}

		ps.log.Debug("Upserting profile graph", "handle", parsed.Handle, "clips", len(parsed.Clips), "playlists", len(parsed.Playlists))

		for _, clipDoc := range parsed.Clips {
			if err := ps.upsertOwnedClip(ctx, tx, clipDoc, profile.ID); err != nil {
				return err
			}
		}

		for _, playlistDoc := range parsed.Playlists {
			if err := ps.upsertOwnedPlaylist(ctx, tx, playlistDoc, profile); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return ps.profileRepo.GetByHandle(ctx, nil, parsed.Handle)
}

// upsertOwnedClip creates a missing clip under the given profile, or claims
// ownership of an existing orphan. An already-owned clip is left alone.
func (ps *profileService) upsertOwnedClip(ctx context.Context, tx *gorm.DB, clipDoc upstream.ClipDoc, profileID string) error {
	clip, err := ps.clipRepo.GetByID(ctx, tx, clipDoc.ID)
	if err != nil {
		return err
	}
	if clip == nil {
		row := newClipRow(clipDoc, &profileID)
		if err := ps.clipRepo.Create(ctx, tx, row); err != nil {
			return fmt.Errorf("error creating clip %q: %w", clipDoc.ID, err)
		}
		return nil
	}
	if clip.ProfileID == nil {
		return ps.clipRepo.ClaimOwner(ctx, tx, clip.ID, profileID)
	}
	return nil
}

func (ps *profileService) upsertOwnedPlaylist(ctx context.Context, tx *gorm.DB, playlistDoc upstream.PlaylistDoc, profile *types.Profile) error {
	playlist, err := ps.playlistRepo.GetByID(ctx, tx, playlistDoc.ID)
	if err != nil {
		return err
	}
	if playlist == nil {
		row := newPlaylistRow(playlistDoc, &profile.ID, profile.Handle)
		if err := ps.playlistRepo.Create(ctx, tx, row); err != nil {
			return fmt.Errorf("error creating playlist %q: %w", playlistDoc.ID, err)
		}
	} else if playlist.ProfileID == nil {
		if err := ps.playlistRepo.ClaimOwner(ctx, tx, playlist.ID, profile.ID); err != nil {
			return err
		}
	}

	for index, clipDoc := range playlistDoc.Clips {
		clip, err := ps.clipRepo.GetByID(ctx, tx, clipDoc.ID)
		if err != nil {
			return err
		}
		if clip == nil {
			clip = newClipRow(clipDoc, &profile.ID)
			if err := ps.clipRepo.Create(ctx, tx, clip); err != nil {
				return fmt.Errorf("error creating clip %q: %w", clipDoc.ID, err)
			}
		}
		// Membership is checked by id, never by object identity: the clip
		// row may have just been loaded fresh in this same transaction.
		member, err := ps.playlistRepo.HasClip(ctx, tx, playlistDoc.ID, clip.ID)
		if err != nil {
			return err
		}
		if !member {
			if err := ps.playlistRepo.AddClip(ctx, tx, playlistDoc.ID, clip.ID, index); err != nil {
				return fmt.Errorf("error attaching clip %q to playlist %q: %w", clip.ID, playlistDoc.ID, err)
			}
		}
	}
	return nil
}
