package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/sunomirror-backend/internal/clients/suno"
	"github.com/yungbote/sunomirror-backend/internal/dto"
	"github.com/yungbote/sunomirror-backend/internal/platform/logger"
	"github.com/yungbote/sunomirror-backend/internal/repos"
	"github.com/yungbote/sunomirror-backend/internal/repos/testutil"
	"github.com/yungbote/sunomirror-backend/internal/upstream"
)

// fakeFetcher serves canned upstream documents and counts calls, so tests
// can assert exactly how many fetches a lookup performed.
type fakeFetcher struct {
	profiles  map[string]suno.Result
	clips     map[string]suno.Result
	playlists map[string]suno.Result

	profileCalls  int
	clipCalls     int
	playlistCalls int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		profiles:  map[string]suno.Result{},
		clips:     map[string]suno.Result{},
		playlists: map[string]suno.Result{},
	}
}

func (f *fakeFetcher) FetchProfile(ctx context.Context, handle string) suno.Result {
	f.profileCalls++
	if r, ok := f.profiles[handle]; ok {
		return r
	}
	return suno.Result{Doc: upstream.Document{}}
}

func (f *fakeFetcher) FetchClip(ctx context.Context, clipID string) suno.Result {
	f.clipCalls++
	if r, ok := f.clips[clipID]; ok {
		return r
	}
	return suno.Result{Doc: upstream.Document{}}
}

func (f *fakeFetcher) FetchPlaylist(ctx context.Context, playlistID string) suno.Result {
	f.playlistCalls++
	if r, ok := f.playlists[playlistID]; ok {
		return r
	}
	return suno.Result{Doc: upstream.Document{}}
}

type testEnv struct {
	db       *gorm.DB
	log      *logger.Logger
	fetcher  *fakeFetcher
	profile  ProfileService
	clip     ClipService
	playlist PlaylistService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	fetcher := newFakeFetcher()
	mapper := dto.NewMapper(log)

	profileRepo := repos.NewProfileRepo(gdb, log)
	clipRepo := repos.NewClipRepo(gdb, log)
	playlistRepo := repos.NewPlaylistRepo(gdb, log)

	return &testEnv{
		db:       gdb,
		log:      log,
		fetcher:  fetcher,
		profile:  NewProfileService(gdb, log, profileRepo, clipRepo, playlistRepo, fetcher, mapper),
		clip:     NewClipService(gdb, log, clipRepo, fetcher, mapper),
		playlist: NewPlaylistService(gdb, log, playlistRepo, clipRepo, fetcher, mapper),
	}
}

func (e *testEnv) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func okResult(doc upstream.Document) suno.Result {
	return suno.Result{Doc: doc}
}

func unavailableResult() suno.Result {
	return suno.Result{Doc: upstream.Document{}, Unavailable: true}
}

func profileDoc(handle string) upstream.Document {
	return upstream.Document{
		"id":           "prof-" + handle,
		"handle":       handle,
		"display_name": "Display " + handle,
		"clips": []any{
			map[string]any{"id": "clip-" + handle, "title": "song", "duration": 180.0},
		},
		"playlists": []any{
			map[string]any{
				"id":   "pl-" + handle,
				"name": "mix",
				"clips": []any{
					map[string]any{"id": "clip-" + handle, "title": "song"},
				},
			},
		},
	}
}
