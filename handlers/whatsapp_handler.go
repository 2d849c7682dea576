package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wds/whatsapp-gateway/internal/domain"
	"github.com/wds/whatsapp-gateway/pkg/logger"
	"github.com/wds/whatsapp-gateway/pkg/response"
	"github.com/wds/whatsapp-gateway/pkg/validator"
)

// Small internal interface so handlers can be tested with a fake service.
type whatsAppService interface {
	SendText(ctx context.Context, phone, text string) *domain.SendResult
	SendMedia(ctx context.Context, phone, mediaURL, caption string, kind domain.MediaKind) *domain.SendResult
	SendLocation(ctx context.Context, phone, latitude, longitude, address string) *domain.SendResult
	GetMessages(ctx context.Context, page, limit int) *domain.SendResult
	GetStatus(ctx context.Context) *domain.SendResult
}

type WhatsAppHandler struct {
	service whatsAppService
}

func NewWhatsAppHandler(service whatsAppService) *WhatsAppHandler {
	return &WhatsAppHandler{service: service}
}

type SendTextRequest struct {
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type SendMediaRequest struct {
	Phone   string `json:"phone" validate:"required"`
	URL     string `json:"url" validate:"required,url"`
	Caption string `json:"caption"`
}

type SendLocationRequest struct {
	Phone     string `json:"phone" validate:"required"`
	Latitude  string `json:"latitude" validate:"required"`
	Longitude string `json:"longitude" validate:"required"`
	Address   string `json:"address"`
}

// SendText godoc
// @Summary Send a text message
// @Description Sends a WhatsApp text message through the gateway
// @Tags whatsapp
// @Accept json
// @Produce json
// @Param x-wa-auth-key header string true "API key"
// @Param request body SendTextRequest true "Message to send"
// @Success 200 {object} domain.SendResult
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/whatsapp/send [post]
func (h *WhatsAppHandler) SendText(c echo.Context) error {
	var req SendTextRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	logger.Infof("Received request to send message to: %s", req.Phone)

	result := h.service.SendText(c.Request().Context(), req.Phone, req.Message)
	return c.JSON(http.StatusOK, result)
}

// SendImage godoc
// @Summary Send an image
// @Description Fetches the image URL, inlines it as a data URI and sends it
// @Tags whatsapp
// @Accept json
// @Produce json
// @Param x-wa-auth-key header string true "API key"
// @Param request body SendMediaRequest true "Image to send"
// @Success 200 {object} domain.SendResult
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/whatsapp/send-image [post]
func (h *WhatsAppHandler) SendImage(c echo.Context) error {
	return h.sendMedia(c, domain.MediaImage)
}

// SendAudio godoc
// @Summary Send an audio file or voice note
// @Tags whatsapp
// @Accept json
// @Produce json
// @Param x-wa-auth-key header string true "API key"
// @Param request body SendMediaRequest true "Audio to send"
// @Success 200 {object} domain.SendResult
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/whatsapp/send-audio [post]
func (h *WhatsAppHandler) SendAudio(c echo.Context) error {
	return h.sendMedia(c, domain.MediaAudio)
}

// SendDocument godoc
// @Summary Send a document
// @Tags whatsapp
// @Accept json
// @Produce json
// @Param x-wa-auth-key header string true "API key"
// @Param request body SendMediaRequest true "Document to send"
// @Success 200 {object} domain.SendResult
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/whatsapp/send-document [post]
func (h *WhatsAppHandler) SendDocument(c echo.Context) error {
	return h.sendMedia(c, domain.MediaDocument)
}

func (h *WhatsAppHandler) sendMedia(c echo.Context, kind domain.MediaKind) error {
	var req SendMediaRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	logger.Infof("Received request to send %s to: %s", kind, req.Phone)

	result := h.service.SendMedia(c.Request().Context(), req.Phone, req.URL, req.Caption, kind)
	return c.JSON(http.StatusOK, result)
}

// SendLocation godoc
// @Summary Send a location pin
// @Tags whatsapp
// @Accept json
// @Produce json
// @Param x-wa-auth-key header string true "API key"
// @Param request body SendLocationRequest true "Location to send"
// @Success 200 {object} domain.SendResult
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/whatsapp/send-location [post]
func (h *WhatsAppHandler) SendLocation(c echo.Context) error {
	var req SendLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	logger.Infof("Received request to send location to: %s", req.Phone)

	result := h.service.SendLocation(c.Request().Context(),
		req.Phone, req.Latitude, req.Longitude, req.Address)
	return c.JSON(http.StatusOK, result)
}

// GetMessages godoc
// @Summary Get conversation history
// @Description Proxies the gateway's paginated message history
// @Tags whatsapp
// @Accept json
// @Produce json
// @Param x-wa-auth-key header string true "API key"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} domain.SendResult
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/whatsapp/messages [get]
func (h *WhatsAppHandler) GetMessages(c echo.Context) error {
	page, limit, err := parsePaginationParams(c)
	if err != nil {
		return response.BadRequest(c, err)
	}

	logger.Infof("Retrieving messages - page: %d, limit: %d", page, limit)

	result := h.service.GetMessages(c.Request().Context(), page, limit)
	return c.JSON(http.StatusOK, result)
}

// GetStatus godoc
// @Summary Get gateway phone status
// @Tags whatsapp
// @Accept json
// @Produce json
// @Param x-wa-auth-key header string true "API key"
// @Success 200 {object} domain.SendResult
// @Router /api/v1/whatsapp/status [get]
func (h *WhatsAppHandler) GetStatus(c echo.Context) error {
	logger.Infof("Checking WhatsApp status")

	result := h.service.GetStatus(c.Request().Context())
	return c.JSON(http.StatusOK, result)
}

func parsePaginationParams(c echo.Context) (int, int, error) {
	const (
		defaultPage  = 1
		defaultLimit = 20
		maxLimit     = 100
	)

	page := defaultPage
	if pageStr := c.QueryParam("page"); pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p <= 0 {
			return 0, 0, fmt.Errorf("page must be a positive integer")
		}
		page = p
	}

	limit := defaultLimit
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 || l > maxLimit {
			return 0, 0, fmt.Errorf("limit must be between 1 and %d", maxLimit)
		}
		limit = l
	}

	return page, limit, nil
}
