package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/RenaudDev/PaperPause/internal/domain"
)

// apiKeyHeader carries the static shared secret the endpoint expects.
const apiKeyHeader = "x-make-apikey"

// WebhookDispatcher delivers queue items by POSTing JSON to the configured
// endpoint. URL and key are injected from config so tests can point to a
// local mock. Any 2xx response is acceptance; everything else, including a
// timeout, is a per-item failure.
type WebhookDispatcher struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewWebhookDispatcher(url, apiKey string, timeout time.Duration) *WebhookDispatcher {
	return &WebhookDispatcher{
		url:    url,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (d *WebhookDispatcher) Dispatch(ctx context.Context, item domain.QueueItem) error {
	body, err := json.Marshal(Payload{
		Collection: item.Collection,
		BoardName:  item.BoardName,
		FeedURL:    item.FeedURL,
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, d.apiKey)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The endpoint's error body is the only diagnostic we get; keep
		// a short prefix of it.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook status %d: %s", resp.StatusCode, string(snippet))
	}
	return nil
}

// compile-time check that WebhookDispatcher implements Dispatcher
var _ Dispatcher = (*WebhookDispatcher)(nil)
