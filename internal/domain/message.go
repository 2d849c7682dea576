package domain

// MediaKind identifies the family of an outbound or persisted media item. It
// selects the MIME fallback on the outbound side and the storage subfolder on
// the inbound side.
type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaAudio    MediaKind = "audio"
	MediaVideo    MediaKind = "video"
	MediaDocument MediaKind = "document"
)

// SendRequest is the gateway wire body for POST .../sendMessage.
type SendRequest struct {
	ToNumber  string `json:"to_number"`
	Type      string `json:"type"`
	Message   string `json:"message,omitempty"`
	Text      string `json:"text,omitempty"`
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
}

// SendResult is the uniform caller-facing outcome of every outbound operation.
// Failures are reported in-band (Success=false, human-readable Message); no
// gateway or encoding error escapes the service boundary as a Go error.
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func OkResult(message string, data any) *SendResult {
	return &SendResult{Success: true, Message: message, Data: data}
}

func FailResult(message string) *SendResult {
	return &SendResult{Success: false, Message: message, Data: nil}
}
