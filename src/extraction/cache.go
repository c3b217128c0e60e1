package extraction

import (
	"github.com/patrickmn/go-cache"
)

type cachingExtractor struct {
	inner TextExtractor
	cache *cache.Cache
}

// NewCachingExtractor wraps an extractor with an in-memory text cache keyed
// by file path, so a file listed twice (or re-parsed within the cache
// window) is only run through PDF extraction once.
func NewCachingExtractor(inner TextExtractor, c *cache.Cache) TextExtractor {
	return &cachingExtractor{inner: inner, cache: c}
}

func (e *cachingExtractor) Extract(path string) (string, error) {
	if cached, found := e.cache.Get(path); found {
		return cached.(string), nil
	}
	text, err := e.inner.Extract(path)
	if err != nil {
		return "", err
	}
	e.cache.Set(path, text, cache.DefaultExpiration)
	return text, nil
}
