package media

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/wds/whatsapp-gateway/pkg/logger"
)

type fetcher interface {
	Fetch(ctx context.Context, mediaURL string) ([]byte, error)
}

// Encoder turns a remote media URL into the gateway's inline data URI
// representation: data:{mime};base64,{payload}.
type Encoder struct {
	fetcher    fetcher
	sizeWarnKB int
}

func NewEncoder(f fetcher, sizeWarnKB int) *Encoder {
	return &Encoder{fetcher: f, sizeWarnKB: sizeWarnKB}
}

// EncodeDataURI fetches the media, classifies its MIME type and base64-encodes
// the bytes. The size check against the gateway's undocumented limit is
// advisory only: oversized payloads are logged, never rejected.
func (e *Encoder) EncodeDataURI(ctx context.Context, mediaURL, typeHint string) (string, error) {
	data, err := e.fetcher.Fetch(ctx, mediaURL)
	if err != nil {
		return "", err
	}

	mimeType := ClassifyMime(mediaURL, typeHint)
	encoded := base64.StdEncoding.EncodeToString(data)
	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, encoded)

	sizeKB := len(dataURI) / 1024
	logger.Infof("Encoded media %s as %s (%d KB)", mediaURL, mimeType, sizeKB)
	if sizeKB > e.sizeWarnKB {
		logger.Warnf("Media size (%d KB) exceeds recommended limit of %d KB. This might fail.",
			sizeKB, e.sizeWarnKB)
	}

	return dataURI, nil
}
