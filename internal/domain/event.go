package domain

import "encoding/json"

// EventCategory is the top-level class of an inbound webhook payload,
// determined solely by its "type" field.
type EventCategory string

const (
	CategoryError   EventCategory = "error"
	CategoryMessage EventCategory = "message"
	CategoryOther   EventCategory = "other"
)

// MessageKind is the closed set of inbound message sub-types the dispatcher
// understands. KindUnknown keeps the raw fields for forward compatibility.
type MessageKind string

const (
	KindText     MessageKind = "text"
	KindPTT      MessageKind = "ptt"
	KindAudio    MessageKind = "audio"
	KindImage    MessageKind = "image"
	KindDocument MessageKind = "document"
	KindLocation MessageKind = "location"
	KindVCard    MessageKind = "vcard"
	KindUnknown  MessageKind = "unknown"
)

// WebhookEnvelope is the wire shape of an inbound gateway webhook. The gateway
// sends loosely-typed JSON; anything beyond the recognized fields is ignored.
type WebhookEnvelope struct {
	Type         string          `json:"type"`
	Conversation string          `json:"conversation"`
	Receiver     string          `json:"receiver"`
	Timestamp    int64           `json:"timestamp"`
	Message      *WebhookMessage `json:"message"`
	User         *WebhookUser    `json:"user"`
}

type WebhookMessage struct {
	ID       string          `json:"id"`
	FromMe   bool            `json:"fromMe"`
	Type     string          `json:"type"`
	Body     string          `json:"body"`
	Text     string          `json:"text"`
	URL      string          `json:"url"`
	Mime     string          `json:"mime"`
	Filename string          `json:"filename"`
	Caption  string          `json:"caption"`
	Payload  string          `json:"payload"`
	Quoted   *QuotedRef      `json:"quoted"`
	Raw      json.RawMessage `json:"-"`
}

type webhookMessageAlias WebhookMessage

// UnmarshalJSON keeps the raw message object alongside the decoded fields so
// unknown kinds can carry their original payload.
func (m *WebhookMessage) UnmarshalJSON(data []byte) error {
	var a webhookMessageAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*m = WebhookMessage(a)
	m.Raw = append([]byte(nil), data...)
	return nil
}

type WebhookUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// QuotedRef is a denormalized back-reference to the message being replied to.
// It carries copied fields only; there is no live link to the prior message.
type QuotedRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
	URL  string `json:"url"`
}

// ClassifyEvent maps a payload's top-level type string to its category.
// Absent or unrecognized type strings are CategoryOther; they are
// acknowledged and otherwise ignored.
func ClassifyEvent(eventType string) EventCategory {
	switch eventType {
	case "error":
		return CategoryError
	case "message":
		return CategoryMessage
	default:
		return CategoryOther
	}
}

// InboundEvent is the decoded form of a message-category webhook: the kind tag
// plus the fields that kind carries. Raw holds the original message object for
// unknown kinds.
type InboundEvent struct {
	Kind     MessageKind
	Sender   string
	FromMe   bool
	Text     string
	MediaURL string
	Filename string
	Location string
	Quoted   *QuotedRef
	Raw      json.RawMessage
}

// ParseInboundEvent decodes a message-category envelope into an InboundEvent.
// A missing message or user object is a malformed payload; the caller logs it
// and acknowledges anyway.
func ParseInboundEvent(env *WebhookEnvelope) (*InboundEvent, error) {
	if env.Message == nil || env.User == nil {
		return nil, NewMalformedPayloadError("parse webhook", "missing message or user data")
	}

	msg := env.Message
	ev := &InboundEvent{
		Sender: env.User.Phone,
		FromMe: msg.FromMe,
		Quoted: msg.Quoted,
	}

	switch msg.Type {
	case "text":
		ev.Kind = KindText
		// Some gateway versions put the text in "body", older ones in "text".
		ev.Text = msg.Body
		if ev.Text == "" {
			ev.Text = msg.Text
		}
	case "ptt":
		ev.Kind = KindPTT
		ev.MediaURL = msg.URL
	case "audio":
		ev.Kind = KindAudio
		ev.MediaURL = msg.URL
	case "image":
		ev.Kind = KindImage
		ev.MediaURL = msg.URL
	case "document":
		ev.Kind = KindDocument
		ev.MediaURL = msg.URL
		ev.Filename = msg.Filename
	case "location":
		ev.Kind = KindLocation
		// The gateway encodes coordinates as a "lat,lng" payload string.
		ev.Location = msg.Payload
	case "vcard":
		ev.Kind = KindVCard
		ev.Text = msg.Body
	default:
		ev.Kind = KindUnknown
		ev.Raw = msg.Raw
	}

	return ev, nil
}
