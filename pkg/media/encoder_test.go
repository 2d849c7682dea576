package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/wds/whatsapp-gateway/internal/domain"
)

type stubFetcher struct {
	data []byte
	err  error

	calls int
}

func (s *stubFetcher) Fetch(ctx context.Context, mediaURL string) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func TestEncodeDataURI_FormatAndRoundTrip(t *testing.T) {
	raw := []byte("not really a jpeg, but close enough")
	enc := NewEncoder(&stubFetcher{data: raw}, 5000)

	uri, err := enc.EncodeDataURI(context.Background(), "https://cdn.example.com/pic.jpg", "image")
	if err != nil {
		t.Fatalf("EncodeDataURI returned error: %v", err)
	}

	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("expected prefix %q, got %q", prefix, uri[:min(len(uri), 40)])
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("base64 body does not decode: %v", err)
	}
	if !bytes.Equal(decoded, raw) {
		t.Fatalf("decoded body does not round-trip to fetched bytes")
	}
}

func TestEncodeDataURI_UsesHintForUnknownExtension(t *testing.T) {
	enc := NewEncoder(&stubFetcher{data: []byte("oggdata")}, 5000)

	uri, err := enc.EncodeDataURI(context.Background(), "https://cdn.example.com/voice-note", "audio")
	if err != nil {
		t.Fatalf("EncodeDataURI returned error: %v", err)
	}
	if !strings.HasPrefix(uri, "data:audio/mp3;base64,") {
		t.Fatalf("expected audio/mp3 data URI, got %q", uri[:min(len(uri), 40)])
	}
}

func TestEncodeDataURI_PropagatesFetchError(t *testing.T) {
	fetchErr := domain.NewNetworkError("fetch media", errors.New("connection refused"))
	enc := NewEncoder(&stubFetcher{err: fetchErr}, 5000)

	_, err := enc.EncodeDataURI(context.Background(), "https://cdn.example.com/pic.jpg", "image")
	if err == nil {
		t.Fatalf("expected fetch error to propagate")
	}
	if kind := domain.KindOf(err); kind != domain.ErrNetwork {
		t.Fatalf("expected ErrNetwork, got %q", kind)
	}
}

// The 5 MB size check is advisory: an oversized payload is still encoded and
// returned.
func TestEncodeDataURI_OversizedPayloadStillSucceeds(t *testing.T) {
	big := bytes.Repeat([]byte{0xab}, 64*1024)
	// Threshold of 1 KB so the test payload trips the warning.
	enc := NewEncoder(&stubFetcher{data: big}, 1)

	uri, err := enc.EncodeDataURI(context.Background(), "https://cdn.example.com/big.jpg", "image")
	if err != nil {
		t.Fatalf("oversized payload must not fail encoding: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
		t.Fatalf("unexpected data URI prefix")
	}
}
