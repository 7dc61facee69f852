// Package client is a Go consumer of the marathon API with a stale-while-
// revalidate cache: responses stay fresh for a window, stale entries are
// served immediately while a background refetch updates them, and unused
// entries are evicted after a longer window.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	cache "github.com/patrickmn/go-cache"

	"github.com/runventure/marathon-finder/internal/lib/sl"
	"github.com/runventure/marathon-finder/internal/models"
)

const (
	defaultFreshWindow = 5 * time.Minute
	defaultEvictWindow = 10 * time.Minute
)

type entry struct {
	marathons []models.Marathon
	marathon  *models.Marathon
	fetchedAt time.Time
}

// Client fetches marathon data over HTTP and caches responses in memory.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	cache   *cache.Cache
	fresh   time.Duration
	log     *slog.Logger

	mu       sync.Mutex
	inflight map[string]bool
}

// Option adjusts client behaviour.
type Option func(*Client)

// WithWindows overrides the freshness and eviction windows.
func WithWindows(fresh, evict time.Duration) Option {
	return func(c *Client) {
		c.fresh = fresh
		c.cache = cache.New(evict, evict)
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http.HTTPClient = hc
	}
}

// New creates a Client for the API at baseURL. Failed requests are
// retried once before the error is reported.
func New(baseURL string, log *slog.Logger, opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 1
	rc.Logger = nil

	c := &Client{
		baseURL:  baseURL,
		http:     rc,
		cache:    cache.New(defaultEvictWindow, defaultEvictWindow),
		fresh:    defaultFreshWindow,
		log:      log,
		inflight: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Marathons returns the records matching criteria. A fresh cached result
// is returned without a request; a stale one is returned immediately
// while a background refetch updates the cache.
func (c *Client) Marathons(ctx context.Context, criteria models.FilterCriteria) ([]models.Marathon, error) {
	key := listKey(criteria)

	if e, ok := c.lookup(key); ok {
		if time.Since(e.fetchedAt) >= c.fresh {
			c.refetchAsync(key, func(ctx context.Context) (*entry, error) {
				return c.fetchList(ctx, criteria)
			})
		}
		return e.marathons, nil
	}

	e, err := c.fetchList(ctx, criteria)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, e)
	return e.marathons, nil
}

// Marathon returns a single record by id. A non-positive id disables the
// lookup entirely, no request is made and no error is reported.
func (c *Client) Marathon(ctx context.Context, id int) (*models.Marathon, error) {
	if id <= 0 {
		return nil, nil
	}
	key := "marathon:" + strconv.Itoa(id)

	if e, ok := c.lookup(key); ok {
		if time.Since(e.fetchedAt) >= c.fresh {
			c.refetchAsync(key, func(ctx context.Context) (*entry, error) {
				return c.fetchOne(ctx, id)
			})
		}
		return e.marathon, nil
	}

	e, err := c.fetchOne(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, e)
	return e.marathon, nil
}

func (c *Client) lookup(key string) (*entry, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	e, ok := v.(*entry)
	return e, ok
}

// refetchAsync refreshes key in the background, at most one refetch per
// key at a time. Errors keep the stale entry in place.
func (c *Client) refetchAsync(key string, fetch func(context.Context) (*entry, error)) {
	c.mu.Lock()
	if c.inflight[key] {
		c.mu.Unlock()
		return
	}
	c.inflight[key] = true
	c.mu.Unlock()

	go func() {
		defer func() {
			c.mu.Lock()
			delete(c.inflight, key)
			c.mu.Unlock()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		e, err := fetch(ctx)
		if err != nil {
			c.log.Error("background refetch failed", slog.String("key", key), sl.Err(err))
			return
		}
		c.cache.SetDefault(key, e)
	}()
}

func (c *Client) fetchList(ctx context.Context, criteria models.FilterCriteria) (*entry, error) {
	const op = "client.fetchList"

	var marathons []models.Marathon
	if err := c.getJSON(ctx, "/api/marathons?"+listQuery(criteria), &marathons); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &entry{marathons: marathons, fetchedAt: time.Now()}, nil
}

func (c *Client) fetchOne(ctx context.Context, id int) (*entry, error) {
	const op = "client.fetchOne"

	var m models.Marathon
	if err := c.getJSON(ctx, "/api/marathons/"+strconv.Itoa(id), &m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &entry{marathon: &m, fetchedAt: time.Now()}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("api returned %d: %s", resp.StatusCode, payload.Error)
	}
	return fmt.Errorf("api returned %d", resp.StatusCode)
}

func listKey(c models.FilterCriteria) string {
	return fmt.Sprintf("marathons:%s|%s|%s|%d|%s", c.Type, c.Distance, c.Difficulty, c.Month, c.Search)
}

func listQuery(c models.FilterCriteria) string {
	q := url.Values{}
	if c.Type != "" {
		q.Set("type", c.Type)
	}
	if c.Distance != "" {
		q.Set("distance", c.Distance)
	}
	if c.Difficulty != "" {
		q.Set("difficulty", c.Difficulty)
	}
	if c.Month != 0 {
		q.Set("month", strconv.Itoa(c.Month))
	}
	if c.Search != "" {
		q.Set("search", c.Search)
	}
	return q.Encode()
}
