package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/trader2544/telvix-quote-service/internal/usecase/interfaces"
)

var ErrMissingWebhookURL = errors.New("missing QUOTE_WEBHOOK_URL")

const defaultTimeout = 10 * time.Second

// WebhookNotifier forwards submitted quotes to the agency's notification
// channel (e.g. a Slack/WhatsApp bridge) as a JSON POST.

type WebhookNotifier struct {
	url    string
	client *http.Client
}

var _ interfaces.IQuoteNotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string) (*WebhookNotifier, error) {
	if url == "" {
		log.Printf("[quote][notify] missing QUOTE_WEBHOOK_URL")
		return nil, ErrMissingWebhookURL
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}, nil
}

func (n *WebhookNotifier) Notify(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("[quote][notify] webhook post failed err=%v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[quote][notify] webhook rejected status=%d", resp.StatusCode)
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	log.Printf("[quote][notify] webhook delivered quote_id=%v", payload["quote_id"])
	return nil
}
