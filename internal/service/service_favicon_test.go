package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
)

func TestFaviconService_FetchBestEffort(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		setup    func(f *mock.MockFaviconFetcher)
		wantData []byte
		wantOK   bool
	}{
		{
			name: "success",
			url:  "https://example.com",
			setup: func(f *mock.MockFaviconFetcher) {
				f.EXPECT().Fetch(gomock.Any(), "https://example.com").Return([]byte("icon"), nil)
			},
			wantData: []byte("icon"),
			wantOK:   true,
		},
		{
			name: "fetch error is swallowed",
			url:  "https://example.com",
			setup: func(f *mock.MockFaviconFetcher) {
				f.EXPECT().Fetch(gomock.Any(), "https://example.com").Return(nil, adapter.ErrNotFound)
			},
		},
		{
			name:  "empty url skips the fetch",
			url:   "",
			setup: func(*mock.MockFaviconFetcher) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mock.NewMockFaviconFetcher(ctrl)
			tt.setup(fetcher)

			svc := NewFaviconService(fetcher, logger.Nop())
			data, ok := svc.FetchBestEffort(context.Background(), tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantData, data)
		})
	}
}

func TestFaviconService_Disabled(t *testing.T) {
	svc := NewFaviconService(nil, logger.Nop())
	data, ok := svc.FetchBestEffort(context.Background(), "https://example.com")
	assert.False(t, ok)
	assert.Nil(t, data)
}
