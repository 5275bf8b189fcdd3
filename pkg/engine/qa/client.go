package qa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient talks to the question-answering engine.
type HTTPClient struct {
	BaseURL string
	Client  *http.Client
}

var _ Provider = &HTTPClient{}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

type askRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

func (c *HTTPClient) Answer(ctx context.Context, question, docContext string) (*Answer, error) {
	payloadBytes, err := json.Marshal(askRequest{
		Question: question,
		Context:  docContext,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := c.BaseURL + "/ask"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrUnavailable, resp.StatusCode, string(bodyBytes))
	}

	var answer Answer
	if err := json.Unmarshal(bodyBytes, &answer); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %v", ErrUnavailable, err)
	}

	return &answer, nil
}
