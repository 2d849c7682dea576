package routes

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/wds/whatsapp-gateway/environments"
	"github.com/wds/whatsapp-gateway/handlers"
	"github.com/wds/whatsapp-gateway/internal/middlewares"
)

// RegisterRoutes registers all API routes with middleware
func RegisterRoutes(
	e *echo.Echo,
	healthHandler *handlers.HealthHandler,
	whatsappHandler *handlers.WhatsAppHandler,
	webhookHandler *handlers.WebhookHandler,
	cfg *environments.Config,
) {
	e.GET("/health", healthHandler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 base group
	v1 := e.Group("/api/v1")

	// The webhook receiver is unauthenticated: the gateway pushes to it
	// without our API key.
	v1.POST("/whatsapp/webhook", webhookHandler.Receive)

	// Caller-facing WhatsApp routes behind the API key
	whatsapp := v1.Group("/whatsapp", middlewares.APIKeyAuth(cfg.Auth.WhatsAppAPIKey))

	whatsapp.POST("/send", whatsappHandler.SendText)
	whatsapp.POST("/send-image", whatsappHandler.SendImage)
	whatsapp.POST("/send-audio", whatsappHandler.SendAudio)
	whatsapp.POST("/send-document", whatsappHandler.SendDocument)
	whatsapp.POST("/send-location", whatsappHandler.SendLocation)

	whatsapp.GET("/messages", whatsappHandler.GetMessages)
	whatsapp.GET("/status", whatsappHandler.GetStatus)
}
