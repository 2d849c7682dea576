package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/wds/whatsapp-gateway/environments"
	"github.com/wds/whatsapp-gateway/internal/domain"
	"github.com/wds/whatsapp-gateway/pkg/logger"
)

// Client talks to the Maytapi WhatsApp gateway. Every call is a single
// attempt: delivery retries are the gateway's concern, not ours.
type Client struct {
	httpClient *resty.Client
	baseURL    string
	productID  string
	phoneID    string
}

func NewClient(cfg environments.GatewayConfig) *Client {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("x-maytapi-key", cfg.APIToken)

	return &Client{
		httpClient: client,
		baseURL:    cfg.BaseURL,
		productID:  cfg.ProductID,
		phoneID:    cfg.PhoneID,
	}
}

func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s/%s/%s/%s", c.baseURL, c.productID, c.phoneID, path)
}

// SendMessage posts an outbound message body to the gateway and returns the
// decoded gateway response.
func (c *Client) SendMessage(ctx context.Context, req domain.SendRequest) (map[string]any, error) {
	var body map[string]any

	startTime := time.Now()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&body).
		Post(c.endpoint("sendMessage"))
	if err != nil {
		return nil, domain.NewNetworkError("send message", err)
	}

	logger.Infof("Gateway sendMessage (type=%s) completed in %v (status: %d)",
		req.Type, time.Since(startTime), resp.StatusCode())

	if resp.IsError() {
		return nil, domain.NewBadStatusError("send message", resp.StatusCode(), resp.String())
	}

	return body, nil
}

// GetMessages proxies the gateway's conversation history endpoint.
func (c *Client) GetMessages(ctx context.Context, page, limit int) (map[string]any, error) {
	var body map[string]any

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetResult(&body).
		Get(c.endpoint("getMessages"))
	if err != nil {
		return nil, domain.NewNetworkError("get messages", err)
	}

	if resp.IsError() {
		return nil, domain.NewBadStatusError("get messages", resp.StatusCode(), resp.String())
	}

	return body, nil
}

// Status reports the gateway phone's connection status.
func (c *Client) Status(ctx context.Context) (map[string]any, error) {
	var body map[string]any

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&body).
		Get(c.endpoint("status"))
	if err != nil {
		return nil, domain.NewNetworkError("get status", err)
	}

	if resp.IsError() {
		return nil, domain.NewBadStatusError("get status", resp.StatusCode(), resp.String())
	}

	return body, nil
}
