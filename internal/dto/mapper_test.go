package dto

import (
  "testing"

  "gorm.io/datatypes"

  "github.com/yungbote/sunomirror-backend/internal/platform/logger"
  "github.com/yungbote/sunomirror-backend/internal/types"
)

func testMapper(t *testing.T) *Mapper {
  t.Helper()
  log, err := logger.New("test")
  if err != nil {
    t.Fatalf("logger: %v", err)
  }
  return NewMapper(log)
}

func TestNilEntitiesMapToNilViews(t *testing.T) {
  m := testMapper(t)
  if m.ProfileView(nil) != nil {
    t.Fatal("nil profile should map to nil")
  }
  if m.ClipView(nil) != nil {
    t.Fatal("nil clip should map to nil")
  }
  if m.PlaylistView(nil) != nil {
    t.Fatal("nil playlist should map to nil")
  }
}

func TestProfileViewEmptyCollectionsAreNotNull(t *testing.T) {
  m := testMapper(t)
  view := m.ProfileView(&types.Profile{ID: "p1", Handle: "alice"})
  if view.Clips == nil || view.Playlists == nil {
    t.Fatal("empty collections must serialize as [], not null")
  }
}

func TestMetadataProjection(t *testing.T) {
  m := testMapper(t)
  clip := &types.Clip{
    ID:       "c1",
    Metadata: datatypes.JSON([]byte(`{"tags": "lofi chill", "prompt": "rain on glass", "duration": 180.0, "extra": "dropped"}`)),
  }
  view := m.ClipView(clip)
  if view.Metadata == nil {
    t.Fatal("expected metadata view")
  }
  if view.Metadata.Tags != "lofi chill" || view.Metadata.Prompt != "rain on glass" {
    t.Fatalf("projection: %+v", view.Metadata)
  }
  if view.Metadata.Duration != "180" {
    t.Fatalf("duration should stringify, got %q", view.Metadata.Duration)
  }
}

func TestMalformedMetadataIsTolerated(t *testing.T) {
  m := testMapper(t)
  clip := &types.Clip{
    ID:       "c1",
    Title:    "still served",
    Metadata: datatypes.JSON([]byte(`{"tags":`)),
  }
  view := m.ClipView(clip)
  if view == nil {
    t.Fatal("a bad blob must not fail the whole clip")
  }
  if view.Metadata != nil {
    t.Fatalf("bad blob should project to nil metadata, got %+v", view.Metadata)
  }
  if view.Title != "still served" {
    t.Fatalf("scalar fields unaffected, got %q", view.Title)
  }
}

func TestPlaylistViewHandleFallsBackToOwner(t *testing.T) {
  m := testMapper(t)
  view := m.PlaylistView(&types.Playlist{
    ID:      "pl1",
    Profile: &types.Profile{ID: "p1", Handle: "alice"},
  })
  if view.Handle != "alice" {
    t.Fatalf("handle should fall back to the owner profile, got %q", view.Handle)
  }

  direct := m.PlaylistView(&types.Playlist{ID: "pl2", UserHandle: "bob"})
  if direct.Handle != "bob" {
    t.Fatalf("denormalized handle wins, got %q", direct.Handle)
  }
}

func TestCoerceString(t *testing.T) {
  cases := []struct {
    in   any
    want string
  }{
    {nil, ""},
    {"plain", "plain"},
    {42.0, "42"},
    {42.5, "42.5"},
    {true, "true"},
  }
  for _, tc := range cases {
    if got := coerceString(tc.in); got != tc.want {
      t.Fatalf("coerceString(%v): got %q, want %q", tc.in, got, tc.want)
    }
  }
}
