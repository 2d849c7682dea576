package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wds/whatsapp-gateway/internal/domain"
	"github.com/wds/whatsapp-gateway/pkg/logger"
)

const timestampLayout = "20060102_150405"

type replySender interface {
	SendText(ctx context.Context, phone, text string) *domain.SendResult
}

type mediaPersistor interface {
	Persist(ctx context.Context, mediaURL, filename string, kind domain.MediaKind) (string, error)
}

// Dispatcher routes message-category webhook events to per-kind handlers.
// Every failure is logged and swallowed here: the webhook responder must be
// able to acknowledge the gateway no matter what happened during processing.
type Dispatcher struct {
	sender    replySender
	store     mediaPersistor
	autoReply string

	now func() time.Time
}

func NewDispatcher(sender replySender, store mediaPersistor, autoReply string) *Dispatcher {
	return &Dispatcher{
		sender:    sender,
		store:     store,
		autoReply: autoReply,
		now:       time.Now,
	}
}

// Dispatch decodes the envelope and routes by message kind. It never returns
// an error; malformed payloads are logged no-ops.
func (d *Dispatcher) Dispatch(ctx context.Context, env *domain.WebhookEnvelope) {
	ev, err := domain.ParseInboundEvent(env)
	if err != nil {
		logger.Warnf("Missing message or user data in webhook")
		return
	}

	logger.Infof("Processing %s message from %s", ev.Kind, ev.Sender)

	if ev.Quoted != nil {
		logger.Infof("Message from %s quotes %s message %s", ev.Sender, ev.Quoted.Type, ev.Quoted.ID)
	}

	switch ev.Kind {
	case domain.KindText:
		d.handleText(ctx, ev)
	case domain.KindPTT, domain.KindAudio:
		d.persistMedia(ctx, ev, d.mediaFilename(ev.Sender, "ogg"), domain.MediaAudio)
	case domain.KindImage:
		d.persistMedia(ctx, ev, d.mediaFilename(ev.Sender, "jpg"), domain.MediaImage)
	case domain.KindDocument:
		filename := ev.Filename
		if filename == "" {
			filename = fmt.Sprintf("document_%d", d.now().UnixMilli())
		}
		d.persistMedia(ctx, ev, filename, domain.MediaDocument)
	case domain.KindLocation:
		logger.Infof("Received location from %s: %s", ev.Sender, ev.Location)
	case domain.KindVCard:
		logger.Infof("Received vCard from %s", ev.Sender)
	case domain.KindUnknown:
		logger.Infof("Unhandled message type from %s: %s", ev.Sender, string(ev.Raw))
	}
}

func (d *Dispatcher) handleText(ctx context.Context, ev *domain.InboundEvent) {
	logger.Infof("Processing text message from %s: %s", ev.Sender, ev.Text)

	// Never auto-reply to our own outbound messages echoed back by the gateway.
	if ev.FromMe {
		return
	}

	if strings.Contains(strings.ToLower(ev.Text), "hello") {
		result := d.sender.SendText(ctx, ev.Sender, d.autoReply)
		if !result.Success {
			logger.Errorf("Auto-reply to %s failed: %s", ev.Sender, result.Message)
		}
	}
}

func (d *Dispatcher) persistMedia(ctx context.Context, ev *domain.InboundEvent, filename string, kind domain.MediaKind) {
	if ev.MediaURL == "" {
		logger.Warnf("Media message from %s has no URL, skipping", ev.Sender)
		return
	}

	if _, err := d.store.Persist(ctx, ev.MediaURL, filename, kind); err != nil {
		logger.Errorf("Error downloading media from %s: %v", ev.MediaURL, err)
	}
}

func (d *Dispatcher) mediaFilename(sender, ext string) string {
	return fmt.Sprintf("%s_%s.%s", sender, d.now().Format(timestampLayout), ext)
}
