package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"devhub/portal/internal/config"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// Entry is one raw record from the remote content source, prior to
// normalization.
type Entry = map[string]any

// Client issues entry queries against the remote content source.
type Client interface {
	Entries(ctx context.Context, q Query) ([]Entry, error)
}

type deliveryClient struct {
	rl         ratelimit.Limiter
	config     config.CMSConfig
	baseURL    string
	httpClient *resty.Client
}

// newDeliveryClient constructs the authenticated delivery API client. It
// validates the configured endpoint but performs no network I/O; the first
// query is the first round trip.
func newDeliveryClient(cfg config.CMSConfig) (Client, error) {
	baseURL := cfg.BaseURL
	if cfg.PreviewEnabled && cfg.PreviewToken != "" && cfg.PreviewHost != "" {
		baseURL = "https://" + cfg.PreviewHost
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid delivery API base URL %q", baseURL)
	}

	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(1*time.Second).
		SetRetryMaxWaitTime(8*time.Second).
		SetHeader("api_key", cfg.APIKey).
		SetHeader("access_token", cfg.AccessToken)

	if cfg.PreviewEnabled && cfg.PreviewToken != "" {
		client.SetHeader("preview_token", cfg.PreviewToken)
		log.Info("Delivery client running in preview mode")
	}

	rps := cfg.MaxRequestsPerSecond
	if rps <= 0 {
		rps = 10
	}

	return &deliveryClient{
		rl:         ratelimit.New(rps),
		config:     cfg,
		baseURL:    baseURL,
		httpClient: client,
	}, nil
}

// entriesResponse is the delivery API envelope.
type entriesResponse struct {
	Entries []Entry `json:"entries"`
	Entry   Entry   `json:"entry"`
}

func (c *deliveryClient) Entries(ctx context.Context, q Query) ([]Entry, error) {
	c.rl.Take()

	params := url.Values{}
	params.Set("environment", c.config.Environment)
	if q.SlugEquals != "" {
		filter, err := json.Marshal(map[string]string{"slug": q.SlugEquals})
		if err != nil {
			return nil, fmt.Errorf("failed to encode slug filter: %w", err)
		}
		params.Set("query", string(filter))
	}
	if q.OrderAscBy != "" {
		params.Set("asc", q.OrderAscBy)
	}
	for _, field := range q.Only {
		params.Add("only[BASE][]", field)
	}
	for _, ref := range q.Include {
		params.Add("include[]", ref)
	}

	endpoint := fmt.Sprintf("%s/v3/content_types/%s/entries?%s", c.baseURL, q.ContentType, params.Encode())

	req := c.httpClient.R().SetContext(ctx)
	if q.VariantAliases != "" {
		req.SetHeader("x-cs-variant-uid", q.VariantAliases)
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to query %s entries: %w", q.ContentType, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("delivery API error for %s: %d %s", q.ContentType, resp.StatusCode(), resp.Status())
	}

	var envelope entriesResponse
	if err := json.Unmarshal([]byte(resp.String()), &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode %s entries response: %w", q.ContentType, err)
	}

	entries := envelope.Entries
	if entries == nil && envelope.Entry != nil {
		entries = []Entry{envelope.Entry}
	}

	log.Debugf("Fetched %d %s entries", len(entries), q.ContentType)
	return entries, nil
}
