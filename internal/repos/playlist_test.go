package repos

import (
  "context"
  "testing"

  "github.com/yungbote/sunomirror-backend/internal/repos/testutil"
  "github.com/yungbote/sunomirror-backend/internal/types"
)

func TestPlaylistMembersOrderedByRelativeIndex(t *testing.T) {
  gdb := testutil.DB(t)
  log := testutil.Logger(t)
  repo := NewPlaylistRepo(gdb, log)
  ctx := context.Background()

  if err := gdb.Create(&types.Playlist{ID: "pl1", Name: "mix"}).Error; err != nil {
    t.Fatalf("seed playlist: %v", err)
  }
  for _, id := range []string{"c1", "c2", "c3"} {
    if err := gdb.Create(&types.Clip{ID: id, Title: id}).Error; err != nil {
      t.Fatalf("seed clip %s: %v", id, err)
    }
  }

  // Insertion order deliberately disagrees with the recorded position.
  if err := repo.AddClip(ctx, nil, "pl1", "c1", 2); err != nil {
    t.Fatalf("add c1: %v", err)
  }
  if err := repo.AddClip(ctx, nil, "pl1", "c3", 0); err != nil {
    t.Fatalf("add c3: %v", err)
  }
  if err := repo.AddClip(ctx, nil, "pl1", "c2", 1); err != nil {
    t.Fatalf("add c2: %v", err)
  }

  playlist, err := repo.GetByID(ctx, nil, "pl1")
  if err != nil {
    t.Fatalf("GetByID: %v", err)
  }
  if playlist == nil || len(playlist.Clips) != 3 {
    t.Fatalf("expected 3 members, got %+v", playlist)
  }
  want := []string{"c3", "c2", "c1"}
  for i, clip := range playlist.Clips {
    if clip.ID != want[i] {
      t.Fatalf("position %d: got %q, want %q", i, clip.ID, want[i])
    }
  }
}
