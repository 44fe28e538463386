// Package fetch - cached.go wraps URL fetching with an in-memory cache so
// repeated analyses of the same posting do not re-hit the job board.
package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCacheTTL is how long a fetched page stays fresh.
const DefaultCacheTTL = 24 * time.Hour

// CachedFetcher serves fetches from memory while they are fresh. Safe for
// concurrent use.
type CachedFetcher struct {
	mu        sync.Mutex
	pages     map[string]*cachedPage
	options   *Options
	cacheTTL  time.Duration
	skipCache bool
	now       func() time.Time
}

type cachedPage struct {
	id        uuid.UUID
	result    *Result
	fetchedAt time.Time
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// NewCachedFetcher creates a cached fetcher. A nil config uses defaults.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = &CachedFetcherConfig{}
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	return &CachedFetcher{
		pages:     make(map[string]*cachedPage),
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
		now:       time.Now,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
	PageID    uuid.UUID
}

// Fetch retrieves a URL, returning the cached copy while it is within TTL.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		f.mu.Lock()
		page, ok := f.pages[urlStr]
		f.mu.Unlock()
		if ok && f.now().Sub(page.fetchedAt) < f.cacheTTL {
			return &CachedResult{Result: page.result, FromCache: true, PageID: page.id}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	page := &cachedPage{id: uuid.New(), result: result, fetchedAt: f.now()}
	f.mu.Lock()
	f.pages[urlStr] = page
	f.mu.Unlock()

	return &CachedResult{Result: result, FromCache: false, PageID: page.id}, nil
}

// Invalidate drops a URL from the cache, forcing a re-fetch next time.
func (f *CachedFetcher) Invalidate(urlStr string) {
	f.mu.Lock()
	delete(f.pages, urlStr)
	f.mu.Unlock()
}
