package fetch

import (
	"context"

	"github.com/google/uuid"
)

// JobDocument is a posting fetched from the web: the extracted description
// text plus whatever fields the board's markup exposed directly. PageID
// identifies the cached page the document came from.
type JobDocument struct {
	URL       string
	Platform  Platform
	Text      string
	Fields    JobFields
	PageID    uuid.UUID
	FromCache bool
}

// Job fetches a posting URL through the cache and extracts its description
// text using the board's selectors. Title and company come pre-split when
// the board's markup carries them.
func (f *CachedFetcher) Job(ctx context.Context, urlStr string) (*JobDocument, error) {
	result, err := f.Fetch(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	platform := DetectPlatform(urlStr)
	text, err := ExtractMainText(result.HTML,
		PlatformContentSelectors(platform),
		PlatformNoiseSelectors(platform)...)
	if err != nil {
		return nil, err
	}

	return &JobDocument{
		URL:       urlStr,
		Platform:  platform,
		Text:      text,
		Fields:    ExtractJobFields(result.HTML, platform),
		PageID:    result.PageID,
		FromCache: result.FromCache,
	}, nil
}
