package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/wds/whatsapp-gateway/internal/domain"
	"github.com/wds/whatsapp-gateway/pkg/logger"
	"github.com/wds/whatsapp-gateway/pkg/response"
)

type webhookDispatcher interface {
	Dispatch(ctx context.Context, env *domain.WebhookEnvelope)
}

// WebhookHandler receives inbound pushes from the gateway. Whatever happens
// during processing, the gateway gets an acknowledgment: a non-2xx here would
// only make it retry-storm a handler that cannot succeed. The one exception
// is a genuinely empty payload.
type WebhookHandler struct {
	dispatcher webhookDispatcher
}

func NewWebhookHandler(dispatcher webhookDispatcher) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher}
}

// Receive godoc
// @Summary Gateway webhook receiver
// @Description Accepts message, status and error events pushed by the gateway
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/whatsapp/webhook [post]
func (h *WebhookHandler) Receive(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		return response.BadRequestWithMessage(c, "Empty payload")
	}

	// Error webhooks carry "message" as a plain string, so classification
	// probes the type field alone before the full envelope decode.
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		logger.Warnf("Webhook payload is not valid JSON: %v", err)
		return response.BadRequestWithMessage(c, "Invalid payload")
	}

	logger.Infof("Webhook received: type=%q", head.Type)

	switch domain.ClassifyEvent(head.Type) {
	case domain.CategoryError:
		// Gateway-side errors are informational; acknowledge and move on.
		logger.Warnf("Webhook received error from WhatsApp API: %s", string(body))
		return response.OkWithMessage(c, "Error webhook acknowledged", nil)
	case domain.CategoryMessage:
		var env domain.WebhookEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			// Accepted and ignored: an unexpected shape must not trigger
			// gateway retries.
			logger.Warnf("Webhook message payload has unexpected shape: %v", err)
			return response.OkWithMessage(c, "Message webhook acknowledged", nil)
		}
		h.dispatcher.Dispatch(c.Request().Context(), &env)
		return response.OkWithMessage(c, "Message webhook acknowledged", nil)
	default:
		return response.OkWithMessage(c, "Webhook processed successfully", nil)
	}
}
