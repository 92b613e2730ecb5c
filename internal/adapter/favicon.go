package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	defaultFaviconTimeout  = 5 * time.Second
	defaultFaviconMaxBytes = 256 << 10
	faviconPath            = "/favicon.ico"
)

type faviconFetcher struct {
	client   *resty.Client
	maxBytes int
	logger   *logger.Logger
}

// NewFaviconFetcher constructs a resty-backed [FaviconFetcher]. It requests
// /favicon.ico from the origin of the entry URL and accepts only image
// responses no larger than cfg.FaviconMaxBytes.
func NewFaviconFetcher(cfg config.Adapter, logger *logger.Logger) FaviconFetcher {
	timeout := cfg.FaviconTimeout
	if timeout <= 0 {
		timeout = defaultFaviconTimeout
	}
	maxBytes := cfg.FaviconMaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultFaviconMaxBytes
	}

	cli := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(3)).
		SetResponseBodyLimit(maxBytes).
		SetHeader("Accept", "image/*")

	return &faviconFetcher{
		client:   cli,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

func (f *faviconFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	target, err := faviconURL(rawURL)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(target)
	if errors.Is(err, resty.ErrResponseBodyTooLarge) {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrResponseTooBig, f.maxBytes)
	}
	if err != nil {
		return nil, fmt.Errorf("favicon request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, ErrEmptyResponse
	}
	if len(body) > f.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrResponseTooBig, len(body))
	}
	if ct := resp.Header().Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("%w: %s", ErrNotAnImage, ct)
	}

	f.logger.Debug().Str("func", "*faviconFetcher.Fetch").Str("url", target).Int("bytes", len(body)).Msg("favicon fetched")
	return body, nil
}

// faviconURL maps an entry URL to the icon location of its origin. A URL
// without a scheme is treated as https.
func faviconURL(rawURL string) (string, error) {
	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return "", ErrInvalidURL
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: faviconPath}).String(), nil
}
