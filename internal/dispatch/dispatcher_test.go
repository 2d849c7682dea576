package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wds/whatsapp-gateway/internal/domain"
)

type fakeSender struct {
	calls []struct{ phone, text string }
}

func (f *fakeSender) SendText(ctx context.Context, phone, text string) *domain.SendResult {
	f.calls = append(f.calls, struct{ phone, text string }{phone, text})
	return domain.OkResult("Message sent successfully", nil)
}

type fakeStore struct {
	calls []struct {
		url, filename string
		kind          domain.MediaKind
	}
	err error
}

func (f *fakeStore) Persist(ctx context.Context, mediaURL, filename string, kind domain.MediaKind) (string, error) {
	f.calls = append(f.calls, struct {
		url, filename string
		kind          domain.MediaKind
	}{mediaURL, filename, kind})
	if f.err != nil {
		return "", f.err
	}
	return "downloads/x/" + filename, nil
}

const autoReply = "Hello! Thanks for contacting us. How can we help you?"

func newTestDispatcher(sender *fakeSender, store *fakeStore) *Dispatcher {
	d := NewDispatcher(sender, store, autoReply)
	d.now = func() time.Time {
		return time.Date(2025, 9, 1, 14, 30, 5, 0, time.UTC)
	}
	return d
}

func messageEnvelope(msgType string, msg *domain.WebhookMessage) *domain.WebhookEnvelope {
	msg.Type = msgType
	return &domain.WebhookEnvelope{
		Type:    "message",
		Message: msg,
		User:    &domain.WebhookUser{Phone: "111"},
	}
}

func TestDispatch_HelloTextTriggersExactlyOneAutoReply(t *testing.T) {
	sender := &fakeSender{}
	store := &fakeStore{}
	d := newTestDispatcher(sender, store)

	d.Dispatch(context.Background(), messageEnvelope("text", &domain.WebhookMessage{Body: "hello there"}))

	if len(sender.calls) != 1 {
		t.Fatalf("expected exactly one auto-reply, got %d", len(sender.calls))
	}
	if sender.calls[0].phone != "111" {
		t.Errorf("auto-reply sent to %q, want 111", sender.calls[0].phone)
	}
	if sender.calls[0].text != autoReply {
		t.Errorf("unexpected auto-reply text: %q", sender.calls[0].text)
	}
	if len(store.calls) != 0 {
		t.Errorf("text message must not touch the persistor")
	}
}

func TestDispatch_HelloMatchIsCaseInsensitiveSubstring(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender, &fakeStore{})

	d.Dispatch(context.Background(), messageEnvelope("text", &domain.WebhookMessage{Body: "well HELLO friend"}))

	if len(sender.calls) != 1 {
		t.Fatalf("expected auto-reply for case-insensitive match, got %d calls", len(sender.calls))
	}
}

func TestDispatch_NonHelloTextSendsNothing(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender, &fakeStore{})

	d.Dispatch(context.Background(), messageEnvelope("text", &domain.WebhookMessage{Body: "goodbye"}))

	if len(sender.calls) != 0 {
		t.Fatalf("expected no auto-reply, got %d", len(sender.calls))
	}
}

func TestDispatch_OwnEchoedMessageIsNotAnswered(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender, &fakeStore{})

	d.Dispatch(context.Background(), messageEnvelope("text", &domain.WebhookMessage{Body: "hello", FromMe: true}))

	if len(sender.calls) != 0 {
		t.Fatalf("must not auto-reply to our own messages")
	}
}

func TestDispatch_AudioKindsPersistWithOggFilename(t *testing.T) {
	for _, msgType := range []string{"ptt", "audio"} {
		store := &fakeStore{}
		d := newTestDispatcher(&fakeSender{}, store)

		d.Dispatch(context.Background(), messageEnvelope(msgType, &domain.WebhookMessage{URL: "https://cdn.example.com/v"}))

		if len(store.calls) != 1 {
			t.Fatalf("type %q: expected one persist call, got %d", msgType, len(store.calls))
		}
		call := store.calls[0]
		if call.filename != "111_20250901_143005.ogg" {
			t.Errorf("type %q: filename = %q", msgType, call.filename)
		}
		if call.kind != domain.MediaAudio {
			t.Errorf("type %q: kind = %q, want audio", msgType, call.kind)
		}
	}
}

func TestDispatch_ImagePersistsWithJpgFilename(t *testing.T) {
	store := &fakeStore{}
	d := newTestDispatcher(&fakeSender{}, store)

	d.Dispatch(context.Background(), messageEnvelope("image", &domain.WebhookMessage{URL: "https://cdn.example.com/p"}))

	if len(store.calls) != 1 {
		t.Fatalf("expected one persist call, got %d", len(store.calls))
	}
	if store.calls[0].filename != "111_20250901_143005.jpg" {
		t.Errorf("filename = %q", store.calls[0].filename)
	}
	if store.calls[0].kind != domain.MediaImage {
		t.Errorf("kind = %q, want image", store.calls[0].kind)
	}
}

func TestDispatch_DocumentUsesSuppliedFilename(t *testing.T) {
	store := &fakeStore{}
	d := newTestDispatcher(&fakeSender{}, store)

	d.Dispatch(context.Background(), messageEnvelope("document", &domain.WebhookMessage{
		URL:      "https://cdn.example.com/d",
		Filename: "invoice.pdf",
	}))

	if len(store.calls) != 1 {
		t.Fatalf("expected one persist call, got %d", len(store.calls))
	}
	if store.calls[0].filename != "invoice.pdf" {
		t.Errorf("filename = %q, want invoice.pdf", store.calls[0].filename)
	}
}

func TestDispatch_DocumentWithoutFilenameUsesEpochMillis(t *testing.T) {
	store := &fakeStore{}
	d := newTestDispatcher(&fakeSender{}, store)

	d.Dispatch(context.Background(), messageEnvelope("document", &domain.WebhookMessage{URL: "https://cdn.example.com/d"}))

	want := "document_" + "1756737005000"
	if len(store.calls) != 1 {
		t.Fatalf("expected one persist call, got %d", len(store.calls))
	}
	if store.calls[0].filename != want {
		t.Errorf("filename = %q, want %q", store.calls[0].filename, want)
	}
}

func TestDispatch_MediaWithoutURLIsSkipped(t *testing.T) {
	store := &fakeStore{}
	d := newTestDispatcher(&fakeSender{}, store)

	d.Dispatch(context.Background(), messageEnvelope("image", &domain.WebhookMessage{}))

	if len(store.calls) != 0 {
		t.Fatalf("expected no persist call without a URL")
	}
}

func TestDispatch_LocationVCardAndUnknownAreLogOnly(t *testing.T) {
	sender := &fakeSender{}
	store := &fakeStore{}
	d := newTestDispatcher(sender, store)

	d.Dispatch(context.Background(), messageEnvelope("location", &domain.WebhookMessage{Payload: "1.0,2.0"}))
	d.Dispatch(context.Background(), messageEnvelope("vcard", &domain.WebhookMessage{Body: "BEGIN:VCARD"}))
	d.Dispatch(context.Background(), messageEnvelope("sticker", &domain.WebhookMessage{}))

	if len(sender.calls) != 0 || len(store.calls) != 0 {
		t.Fatalf("log-only kinds must not send or persist (sends=%d persists=%d)",
			len(sender.calls), len(store.calls))
	}
}

func TestDispatch_MissingMessageOrUserIsNoOp(t *testing.T) {
	sender := &fakeSender{}
	store := &fakeStore{}
	d := newTestDispatcher(sender, store)

	d.Dispatch(context.Background(), &domain.WebhookEnvelope{Type: "message"})
	d.Dispatch(context.Background(), &domain.WebhookEnvelope{
		Type: "message",
		User: &domain.WebhookUser{Phone: "111"},
	})

	if len(sender.calls) != 0 || len(store.calls) != 0 {
		t.Fatalf("malformed payloads must be no-ops")
	}
}

// Persist failures stay inside the dispatch boundary.
func TestDispatch_PersistErrorIsSwallowed(t *testing.T) {
	store := &fakeStore{err: domain.NewIOError("write media file", errors.New("disk full"))}
	d := newTestDispatcher(&fakeSender{}, store)

	d.Dispatch(context.Background(), messageEnvelope("image", &domain.WebhookMessage{URL: "https://cdn.example.com/p"}))

	if len(store.calls) != 1 {
		t.Fatalf("expected persist attempt despite error")
	}
}
