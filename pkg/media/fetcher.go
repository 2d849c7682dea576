package media

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/wds/whatsapp-gateway/internal/domain"
	"github.com/wds/whatsapp-gateway/pkg/logger"
)

// Fetcher retrieves raw bytes from a remote media URL. A single GET, bounded
// by the configured timeout; no retries anywhere in the pipeline.
type Fetcher struct {
	httpClient *resty.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	client := resty.New().
		SetTimeout(timeout)

	return &Fetcher{httpClient: client}
}

func (f *Fetcher) Fetch(ctx context.Context, mediaURL string) ([]byte, error) {
	startTime := time.Now()

	resp, err := f.httpClient.R().
		SetContext(ctx).
		Get(mediaURL)
	if err != nil {
		return nil, domain.NewNetworkError("fetch media", err)
	}

	if resp.IsError() {
		return nil, domain.NewBadStatusError("fetch media", resp.StatusCode(), resp.Status())
	}

	logger.Debugf("Fetched %d bytes from %s in %v", len(resp.Body()), mediaURL, time.Since(startTime))

	return resp.Body(), nil
}
