package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPDelivery posts the report to an external delivery engine.
type HTTPDelivery struct {
	BaseURL string
	Client  *http.Client
}

var _ Delivery = &HTTPDelivery{}

func NewHTTPDelivery(baseURL string, timeout time.Duration) *HTTPDelivery {
	return &HTTPDelivery{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

type deliveryErrorBody struct {
	Error string `json:"error"`
}

func (d *HTTPDelivery) Send(ctx context.Context, sendReq *SendRequest) error {
	payloadBytes, err := json.Marshal(sendReq)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := d.BaseURL + "/send-summary"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Surface the engine's own reason when it reported one.
	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr == nil {
		var body deliveryErrorBody
		if json.Unmarshal(bodyBytes, &body) == nil && body.Error != "" {
			return fmt.Errorf("%w: %s", ErrDeliveryFailed, body.Error)
		}
	}
	return fmt.Errorf("%w: status %d", ErrDeliveryFailed, resp.StatusCode)
}
