package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/wds/whatsapp-gateway/internal/domain"
	"github.com/wds/whatsapp-gateway/pkg/logger"
)

type fetcher interface {
	Fetch(ctx context.Context, mediaURL string) ([]byte, error)
}

var kindSubfolders = map[domain.MediaKind]string{
	domain.MediaImage:    "images",
	domain.MediaAudio:    "audio",
	domain.MediaVideo:    "video",
	domain.MediaDocument: "documents",
}

// Persistor writes inbound media to the local downloads tree. File existence
// at the computed path is the idempotency key: an already-downloaded file
// short-circuits the fetch. Concurrent events that collide on the same path
// resolve last-write-wins; there is no lock.
type Persistor struct {
	root    string
	fetcher fetcher
}

func NewPersistor(root string, f fetcher) *Persistor {
	return &Persistor{root: root, fetcher: f}
}

// Persist downloads mediaURL into {root}/{subfolder}/{filename} and returns
// the destination path. A pre-existing file is a successful no-op.
func (p *Persistor) Persist(ctx context.Context, mediaURL, filename string, kind domain.MediaKind) (string, error) {
	subfolder, ok := kindSubfolders[kind]
	if !ok {
		subfolder = "other"
	}

	destPath := filepath.Join(p.root, subfolder, filename)

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return "", domain.NewIOError("create media directory", err)
	}

	if _, err := os.Stat(destPath); err == nil {
		logger.Infof("File already exists, skipping download: %s", destPath)
		return destPath, nil
	}

	data, err := p.fetcher.Fetch(ctx, mediaURL)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(destPath, data, 0o644); err != nil {
		return "", domain.NewIOError("write media file", err)
	}

	logger.Infof("Media downloaded successfully: %s", destPath)

	return destPath, nil
}
