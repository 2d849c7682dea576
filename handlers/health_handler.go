package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wds/whatsapp-gateway/environments"
)

// HealthHandler handles health checks.
type HealthHandler struct {
	gatewayCfg environments.GatewayConfig
}

func NewHealthHandler(gatewayCfg environments.GatewayConfig) *HealthHandler {
	return &HealthHandler{gatewayCfg: gatewayCfg}
}

// Health returns overall status and whether the gateway credentials are set.
// The gateway itself is not probed here; /api/v1/whatsapp/status does that.
// @Summary Health check
// @Description Returns service liveness and gateway configuration state
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	gatewayStatus := "configured"
	overallStatus := "ok"
	if h.gatewayCfg.APIToken == "" || h.gatewayCfg.ProductID == "" || h.gatewayCfg.PhoneID == "" {
		gatewayStatus = "unconfigured"
		overallStatus = "degraded"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":    overallStatus,
		"timestamp": time.Now().Format(time.RFC3339),
		"components": map[string]any{
			"gateway": map[string]any{
				"status": gatewayStatus,
			},
		},
	})
}
