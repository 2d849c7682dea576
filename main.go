package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/wds/whatsapp-gateway/environments"
	"github.com/wds/whatsapp-gateway/handlers"
	"github.com/wds/whatsapp-gateway/internal/dispatch"
	"github.com/wds/whatsapp-gateway/internal/middlewares"
	"github.com/wds/whatsapp-gateway/internal/service"
	"github.com/wds/whatsapp-gateway/pkg/gateway"
	"github.com/wds/whatsapp-gateway/pkg/logger"
	"github.com/wds/whatsapp-gateway/pkg/media"
	"github.com/wds/whatsapp-gateway/pkg/storage"
	"github.com/wds/whatsapp-gateway/pkg/validator"
	"github.com/wds/whatsapp-gateway/routes"

	_ "github.com/wds/whatsapp-gateway/docs" // swagger docs
)

// @title WhatsApp Gateway Service API
// @version 1.0
// @description Integration shim for the Maytapi WhatsApp gateway: outbound sends and inbound webhook processing

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @schemes http https
func main() {
	logger.Init()

	// Load config
	cfg := environments.Load()

	// Hard-fail if required gateway credentials are missing
	if cfg.Gateway.APIToken == "" {
		logger.Fatalf("MAYTAPI_API_TOKEN is required but not set")
	}
	if cfg.Gateway.ProductID == "" {
		logger.Fatalf("MAYTAPI_PRODUCT_ID is required but not set")
	}
	if cfg.Gateway.PhoneID == "" {
		logger.Fatalf("MAYTAPI_PHONE_ID is required but not set")
	}
	if cfg.Auth.WhatsAppAPIKey == "" {
		logger.Fatalf("WHATSAPP_API_KEY is required but not set")
	}

	logger.Infof("Starting WhatsApp Gateway Service...")

	// Initialize gateway client
	gatewayClient := gateway.NewClient(cfg.Gateway)
	logger.Infof("Gateway configured: %s (product %s, phone %s)",
		cfg.Gateway.BaseURL, cfg.Gateway.ProductID, cfg.Gateway.PhoneID)

	// Outbound media pipeline
	fetcher := media.NewFetcher(cfg.Gateway.Timeout)
	encoder := media.NewEncoder(fetcher, cfg.Media.SizeWarnKB)

	// Outbound service
	whatsappService := service.NewWhatsAppService(gatewayClient, encoder, cfg.Message)

	// Inbound pipeline
	persistor := storage.NewPersistor(cfg.Media.DownloadDir, fetcher)
	dispatcher := dispatch.NewDispatcher(whatsappService, persistor, cfg.Message.AutoReplyText)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.Gateway)
	whatsappHandler := handlers.NewWhatsAppHandler(whatsappService)
	webhookHandler := handlers.NewWebhookHandler(dispatcher)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			middlewares.APIKeyHeader,
		},
	}))

	// Setup routes
	routes.RegisterRoutes(e, healthHandler, whatsappHandler, webhookHandler, cfg)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Infof("Server starting on http://localhost%s", addr)
		logger.Infof("Swagger docs available at http://localhost%s/swagger/index.html", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down gracefully...")

	// Shutdown HTTP server (with timeout). In-flight webhook dispatches finish
	// with their requests; there is no background state to drain.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	logger.Infof("Shutting down HTTP server...")
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	} else {
		logger.Infof("HTTP server stopped successfully")
	}

	logger.Infof("Graceful shutdown completed")
}
