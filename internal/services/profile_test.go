package services

import (
	"context"
	"testing"

	"github.com/yungbote/sunomirror-backend/internal/types"
	"github.com/yungbote/sunomirror-backend/internal/upstream"
)

func TestGetByHandleColdFetch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.fetcher.profiles["alice"] = okResult(profileDoc("alice"))

	view, err := env.profile.GetByHandle(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByHandle: %v", err)
	}
	if view == nil {
		t.Fatal("expected a view after cold fetch")
	}
	if view.Handle != "alice" {
		t.Fatalf("handle: got %q", view.Handle)
	}
	if len(view.Clips) != 1 || len(view.Playlists) != 1 {
		t.Fatalf("expected 1 clip and 1 playlist, got %d and %d", len(view.Clips), len(view.Playlists))
	}
	if env.fetcher.profileCalls != 1 {
		t.Fatalf("expected exactly 1 upstream fetch, got %d", env.fetcher.profileCalls)
	}
	if n := env.count(t, &types.Profile{}); n != 1 {
		t.Fatalf("profiles: got %d rows", n)
	}
	if n := env.count(t, &types.PlaylistClip{}); n != 1 {
		t.Fatalf("playlist memberships: got %d rows", n)
	}
}

func TestGetByHandleMissIsNotAnError(t *testing.T) {
	env := newTestEnv(t)

	view, err := env.profile.GetByHandle(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("miss should not error: %v", err)
	}
	if view != nil {
		t.Fatalf("miss should return nil view, got %+v", view)
	}
}

func TestGetByHandlePopulatedProfileSkipsUpstream(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.profile.SaveProfileGraph(ctx, profileDoc("alice")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	view, err := env.profile.GetByHandle(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByHandle: %v", err)
	}
	if view == nil {
		t.Fatal("expected a view")
	}
	if env.fetcher.profileCalls != 0 {
		t.Fatalf("populated profile should not hit upstream, got %d fetches", env.fetcher.profileCalls)
	}
}

func TestGetByHandleUnderPopulatedRefetchesOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Seed with a doc that has clips but no playlists, so the loaded row
	// looks incomplete.
	partial := profileDoc("alice")
	delete(partial, "playlists")
	if _, err := env.profile.SaveProfileGraph(ctx, partial); err != nil {
		t.Fatalf("seed: %v", err)
	}

	env.fetcher.profiles["alice"] = okResult(profileDoc("alice"))
	view, err := env.profile.GetByHandle(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByHandle: %v", err)
	}
	if env.fetcher.profileCalls != 1 {
		t.Fatalf("expected exactly 1 refetch, got %d", env.fetcher.profileCalls)
	}
	if len(view.Playlists) != 1 {
		t.Fatalf("refetch should fill playlists, got %d", len(view.Playlists))
	}
}

func TestGetByHandleUnderPopulatedServesLocalWhenUpstreamEmpty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	partial := profileDoc("alice")
	delete(partial, "playlists")
	if _, err := env.profile.SaveProfileGraph(ctx, partial); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// No canned doc: upstream says nothing exists. The stale local row is
	// still served.
	view, err := env.profile.GetByHandle(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByHandle: %v", err)
	}
	if view == nil {
		t.Fatal("local row should be served when the refetch comes back empty")
	}
	if len(view.Clips) != 1 {
		t.Fatalf("expected the locally stored clip, got %d", len(view.Clips))
	}
}

func TestSaveProfileGraphIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := profileDoc("alice")

	for i := 0; i < 3; i++ {
		if _, err := env.profile.SaveProfileGraph(ctx, doc); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if n := env.count(t, &types.Profile{}); n != 1 {
		t.Fatalf("profiles: got %d rows", n)
	}
	if n := env.count(t, &types.Clip{}); n != 1 {
		t.Fatalf("clips: got %d rows", n)
	}
	if n := env.count(t, &types.Playlist{}); n != 1 {
		t.Fatalf("playlists: got %d rows", n)
	}
	if n := env.count(t, &types.PlaylistClip{}); n != 1 {
		t.Fatalf("playlist memberships: got %d rows", n)
	}
}

func TestSaveProfileGraphClaimsOwnershipOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Both profiles reference the same clip and playlist.
	shared := upstream.Document{
		"id":     "prof-a",
		"handle": "alice",
		"clips":  []any{map[string]any{"id": "shared-clip"}},
		"playlists": []any{
			map[string]any{"id": "shared-pl", "clips": []any{map[string]any{"id": "shared-clip"}}},
		},
	}
	rival := upstream.Document{
		"id":     "prof-b",
		"handle": "bob",
		"clips":  []any{map[string]any{"id": "shared-clip"}},
		"playlists": []any{
			map[string]any{"id": "shared-pl", "clips": []any{map[string]any{"id": "shared-clip"}}},
		},
	}

	if _, err := env.profile.SaveProfileGraph(ctx, shared); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if _, err := env.profile.SaveProfileGraph(ctx, rival); err != nil {
		t.Fatalf("save second: %v", err)
	}

	var clip types.Clip
	if err := env.db.First(&clip, "id = ?", "shared-clip").Error; err != nil {
		t.Fatalf("load clip: %v", err)
	}
	if clip.ProfileID == nil || *clip.ProfileID != "prof-a" {
		t.Fatalf("clip owner should stay with the first claimer, got %v", clip.ProfileID)
	}

	var playlist types.Playlist
	if err := env.db.First(&playlist, "id = ?", "shared-pl").Error; err != nil {
		t.Fatalf("load playlist: %v", err)
	}
	if playlist.ProfileID == nil || *playlist.ProfileID != "prof-a" {
		t.Fatalf("playlist owner should stay with the first claimer, got %v", playlist.ProfileID)
	}
}

func TestSaveProfileGraphDeduplicatesMembership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc := upstream.Document{
		"id":     "prof-a",
		"handle": "alice",
		"playlists": []any{
			map[string]any{
				"id": "pl1",
				"clips": []any{
					map[string]any{"id": "c1"},
					map[string]any{"id": "c1"},
				},
			},
		},
	}
	if _, err := env.profile.SaveProfileGraph(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	if n := env.count(t, &types.PlaylistClip{}); n != 1 {
		t.Fatalf("duplicate clip entries should collapse to one membership, got %d", n)
	}
}

func TestDeleteProfileCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.profile.SaveProfileGraph(ctx, profileDoc("alice")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	found, err := env.profile.Delete(ctx, "prof-alice")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !found {
		t.Fatal("expected delete to find the profile")
	}

	for _, model := range []any{&types.Profile{}, &types.Clip{}, &types.Playlist{}, &types.PlaylistClip{}} {
		if n := env.count(t, model); n != 0 {
			t.Fatalf("%T: expected 0 rows after cascade, got %d", model, n)
		}
	}

	found, err = env.profile.Delete(ctx, "prof-alice")
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if found {
		t.Fatal("second delete should report not found")
	}
}
