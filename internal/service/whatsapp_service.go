package service

import (
	"context"

	"github.com/wds/whatsapp-gateway/environments"
	"github.com/wds/whatsapp-gateway/internal/domain"
	"github.com/wds/whatsapp-gateway/pkg/logger"
)

// Small internal interfaces so we can test without a real gateway or network.
type gatewayClient interface {
	SendMessage(ctx context.Context, req domain.SendRequest) (map[string]any, error)
	GetMessages(ctx context.Context, page, limit int) (map[string]any, error)
	Status(ctx context.Context) (map[string]any, error)
}

type mediaEncoder interface {
	EncodeDataURI(ctx context.Context, mediaURL, typeHint string) (string, error)
}

// WhatsAppService builds gateway request bodies and converts every pipeline
// failure into a uniform SendResult. No error crosses the service boundary as
// a Go error: callers always get a success/failure result object.
type WhatsAppService struct {
	gateway gatewayClient
	encoder mediaEncoder
	config  environments.MessageConfig
}

func NewWhatsAppService(
	gateway gatewayClient,
	encoder mediaEncoder,
	config environments.MessageConfig,
) *WhatsAppService {
	return &WhatsAppService{
		gateway: gateway,
		encoder: encoder,
		config:  config,
	}
}

func (s *WhatsAppService) SendText(ctx context.Context, phone, text string) *domain.SendResult {
	req := domain.SendRequest{
		ToNumber: normalizeRecipient(phone, s.config.DefaultCountryCode),
		Type:     "text",
		Message:  text,
	}

	logger.Infof("Sending text message to: %s", phone)

	body, err := s.gateway.SendMessage(ctx, req)
	if err != nil {
		logger.Errorf("Error sending message: %v", err)
		return domain.FailResult("Failed to send message: " + err.Error())
	}

	return domain.OkResult("Message sent successfully", body)
}

// SendMedia downloads the media, encodes it as an inline data URI and sends it
// with type="media". The caption rides along in the "text" field when present.
func (s *WhatsAppService) SendMedia(
	ctx context.Context,
	phone, mediaURL, caption string,
	kind domain.MediaKind,
) *domain.SendResult {
	logger.Infof("Downloading media from: %s", mediaURL)

	dataURI, err := s.encoder.EncodeDataURI(ctx, mediaURL, string(kind))
	if err != nil {
		logger.Errorf("Error sending media: %v", err)
		return domain.FailResult("Failed to send media: " + err.Error())
	}

	req := domain.SendRequest{
		ToNumber: normalizeRecipient(phone, s.config.DefaultCountryCode),
		Type:     "media",
		Message:  dataURI,
	}
	if caption != "" {
		req.Text = caption
	}

	logger.Infof("Sending %s to: %s", kind, phone)

	body, err := s.gateway.SendMessage(ctx, req)
	if err != nil {
		logger.Errorf("Error sending media: %v", err)
		return domain.FailResult("Failed to send media: " + err.Error())
	}

	return domain.OkResult("Media sent successfully", body)
}

func (s *WhatsAppService) SendLocation(
	ctx context.Context,
	phone, latitude, longitude, address string,
) *domain.SendResult {
	req := domain.SendRequest{
		ToNumber:  normalizeRecipient(phone, s.config.DefaultCountryCode),
		Type:      "location",
		Latitude:  latitude,
		Longitude: longitude,
	}
	if address != "" {
		req.Text = address
	}

	logger.Infof("Sending location to: %s (lat: %s, lng: %s)", phone, latitude, longitude)

	body, err := s.gateway.SendMessage(ctx, req)
	if err != nil {
		logger.Errorf("Error sending location: %v", err)
		return domain.FailResult("Failed to send location: " + err.Error())
	}

	return domain.OkResult("Location sent successfully", body)
}

func (s *WhatsAppService) GetMessages(ctx context.Context, page, limit int) *domain.SendResult {
	body, err := s.gateway.GetMessages(ctx, page, limit)
	if err != nil {
		logger.Errorf("Error getting messages: %v", err)
		return domain.FailResult("Failed to get messages: " + err.Error())
	}

	return domain.OkResult("Messages retrieved", body)
}

func (s *WhatsAppService) GetStatus(ctx context.Context) *domain.SendResult {
	body, err := s.gateway.Status(ctx)
	if err != nil {
		logger.Errorf("Error getting status: %v", err)
		return domain.FailResult("Failed to get status: " + err.Error())
	}

	return domain.OkResult("Status retrieved", body)
}
