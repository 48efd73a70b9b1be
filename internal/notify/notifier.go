// Package notify posts the one-line weather summary notification. The
// default implementation pushes to an ntfy-style webhook topic; the tap
// target deep-links back into the forecast view for the notified city.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Notifier posts and cancels the weather summary notification.
type Notifier interface {
	Post(ctx context.Context, title, body, link string) error
	Cancel(ctx context.Context) error
	Enabled() bool
}

// ForecastDeepLink builds the tap-target URI for a city's forecast view.
func ForecastDeepLink(base, city string) string {
	return strings.TrimRight(base, "/") + "/forecast/" + url.PathEscape(city)
}

// WebhookNotifier delivers notifications by POSTing to a webhook endpoint.
type WebhookNotifier struct {
	endpoint string
	enabled  bool
	httpc    *http.Client
	log      *zap.Logger
}

func NewWebhookNotifier(endpoint string, enabled bool, httpc *http.Client, log *zap.Logger) *WebhookNotifier {
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &WebhookNotifier{
		endpoint: endpoint,
		enabled:  enabled,
		httpc:    httpc,
		log:      log,
	}
}

// Post sends the notification. When notifications are disabled it silently
// does nothing, matching the behaviour of a platform permission check.
func (n *WebhookNotifier) Post(ctx context.Context, title, body, link string) error {
	if !n.enabled {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("X-Title", title)
	if link != "" {
		req.Header.Set("X-Click", link)
	}

	resp, err := n.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}

	n.log.Info("posted weather notification", zap.String("title", title))
	return nil
}

// Cancel is a no-op for webhook delivery; posted messages cannot be recalled.
func (n *WebhookNotifier) Cancel(ctx context.Context) error {
	return nil
}

func (n *WebhookNotifier) Enabled() bool {
	return n.enabled
}
