package suno

import (
  "context"
  "net/http"
  "net/http/httptest"
  "testing"
  "time"

  "github.com/yungbote/sunomirror-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("test")
  if err != nil {
    t.Fatalf("logger: %v", err)
  }
  return log
}

func TestFetchProfileSuccess(t *testing.T) {
  var gotPath, gotQuery string
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    gotPath = r.URL.Path
    gotQuery = r.URL.RawQuery
    w.Header().Set("Content-Type", "application/json")
    _, _ = w.Write([]byte(`{"handle": "alice", "clips": [{"id": "c1"}]}`))
  }))
  defer srv.Close()

  c := NewClientWithBaseURL(testLogger(t), srv.URL, time.Second)
  result := c.FetchProfile(context.Background(), "alice")

  if result.Unavailable {
    t.Fatal("successful fetch marked unavailable")
  }
  if result.Empty() {
    t.Fatal("successful fetch returned empty document")
  }
  if result.Doc["handle"] != "alice" {
    t.Fatalf("unexpected document: %v", result.Doc)
  }
  if gotPath != "/profiles/alice" {
    t.Fatalf("unexpected path %q", gotPath)
  }
  if gotQuery != "clips_sort_by=created_at&playlists_sort_by=upvote_count" {
    t.Fatalf("unexpected query %q", gotQuery)
  }
}

func TestFetchClipNon2xxIsUnavailable(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    http.Error(w, "boom", http.StatusInternalServerError)
  }))
  defer srv.Close()

  c := NewClientWithBaseURL(testLogger(t), srv.URL, time.Second)
  result := c.FetchClip(context.Background(), "c1")

  if !result.Unavailable {
    t.Fatal("non-2xx should be unavailable")
  }
  if !result.Empty() {
    t.Fatal("non-2xx should yield an empty document")
  }
}

func TestFetchPlaylistMalformedBodyIsUnavailable(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    _, _ = w.Write([]byte(`{"id": "pl1",`))
  }))
  defer srv.Close()

  c := NewClientWithBaseURL(testLogger(t), srv.URL, time.Second)
  result := c.FetchPlaylist(context.Background(), "pl1")

  if !result.Unavailable || !result.Empty() {
    t.Fatalf("malformed body should be unavailable empty, got %+v", result)
  }
}

func TestFetchTimesOutWithoutError(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    time.Sleep(300 * time.Millisecond)
    _, _ = w.Write([]byte(`{}`))
  }))
  defer srv.Close()

  c := NewClientWithBaseURL(testLogger(t), srv.URL, 50*time.Millisecond)
  result := c.FetchClip(context.Background(), "c1")

  if !result.Unavailable || !result.Empty() {
    t.Fatalf("timeout should be unavailable empty, got %+v", result)
  }
}
