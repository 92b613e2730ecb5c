package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type faviconService struct {
	fetcher adapter.FaviconFetcher
	logger  *logger.Logger
}

// NewFaviconService wraps fetcher. A nil fetcher disables favicons: every
// fetch then reports false.
func NewFaviconService(fetcher adapter.FaviconFetcher, logger *logger.Logger) FaviconService {
	return &faviconService{fetcher: fetcher, logger: logger}
}

func (f *faviconService) FetchBestEffort(ctx context.Context, url string) ([]byte, bool) {
	if f.fetcher == nil || url == "" {
		return nil, false
	}

	data, err := f.fetcher.Fetch(ctx, url)
	if err != nil {
		f.logger.Debug().Err(err).Str("func", "*faviconService.FetchBestEffort").Str("url", url).Msg("favicon fetch failed")
		return nil, false
	}
	return data, true
}
