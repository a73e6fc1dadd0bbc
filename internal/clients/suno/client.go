package suno

import (
  "context"
  "encoding/json"
  "fmt"
  "net/http"
  "net/url"
  "time"

  "github.com/yungbote/sunomirror-backend/internal/platform/logger"
  "github.com/yungbote/sunomirror-backend/internal/upstream"
  "github.com/yungbote/sunomirror-backend/internal/utils"
)

// Result is what a fetch produces. The client never returns an error: a
// failed call yields an empty document with Unavailable set, so callers can
// log the difference between "upstream says nothing exists" and "upstream
// was unreachable" while treating both as no data.
type Result struct {
  Doc         upstream.Document
  Unavailable bool
}

func (r Result) Empty() bool {
  return len(r.Doc) == 0
}

type Client interface {
  FetchProfile(ctx context.Context, handle string) Result
  FetchClip(ctx context.Context, clipID string) Result
  FetchPlaylist(ctx context.Context, playlistID string) Result
}

type client struct {
  httpClient *http.Client
  baseURL    string
  log        *logger.Logger
}

func NewClient(log *logger.Logger) Client {
  clientLog := log.With("client", "SunoClient")
  baseURL := utils.GetEnv("SUNO_API_BASE_URL", "https://studio-api.prod.suno.com/api", log)
  timeoutSeconds := utils.GetEnvAsInt("SUNO_FETCH_TIMEOUT_SECONDS", 3, log)
  return &client{
    httpClient: &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
    baseURL:    baseURL,
    log:        clientLog,
  }
}

// NewClientWithBaseURL is used by tests to point the client at a local server.
func NewClientWithBaseURL(log *logger.Logger, baseURL string, timeout time.Duration) Client {
  return &client{
    httpClient: &http.Client{Timeout: timeout},
    baseURL:    baseURL,
    log:        log.With("client", "SunoClient"),
  }
}

func (c *client) FetchProfile(ctx context.Context, handle string) Result {
  params := url.Values{}
  params.Set("playlists_sort_by", "upvote_count")
  params.Set("clips_sort_by", "created_at")
  return c.fetch(ctx, fmt.Sprintf("%s/profiles/%s?%s", c.baseURL, url.PathEscape(handle), params.Encode()), "profile", handle)
}

func (c *client) FetchClip(ctx context.Context, clipID string) Result {
  return c.fetch(ctx, fmt.Sprintf("%s/clip/%s", c.baseURL, url.PathEscape(clipID)), "clip", clipID)
}

func (c *client) FetchPlaylist(ctx context.Context, playlistID string) Result {
  return c.fetch(ctx, fmt.Sprintf("%s/playlist/%s", c.baseURL, url.PathEscape(playlistID)), "playlist", playlistID)
}

// fetch makes a single attempt with no retries. Staleness is tolerated and
// self-corrects on the next request if the failure was transient.
func (c *client) fetch(ctx context.Context, rawURL, kind, key string) Result {
  unavailable := Result{Doc: upstream.Document{}, Unavailable: true}

  req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
  if err != nil {
    c.log.Warn("Failed to build upstream request", "kind", kind, "key", key, "error", err)
    return unavailable
  }

  resp, err := c.httpClient.Do(req)
  if err != nil {
    c.log.Warn("Upstream fetch failed", "kind", kind, "key", key, "error", err)
    return unavailable
  }
  defer resp.Body.Close()

  if resp.StatusCode < 200 || resp.StatusCode > 299 {
    c.log.Warn("Upstream returned non-2xx", "kind", kind, "key", key, "status", resp.StatusCode)
    return unavailable
  }

  var doc upstream.Document
  if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
    c.log.Warn("Upstream body could not be decoded", "kind", kind, "key", key, "error", err)
    return unavailable
  }
  if doc == nil {
    doc = upstream.Document{}
  }

  c.log.Info("Fetched from upstream", "kind", kind, "key", key)
  return Result{Doc: doc}
}
