package helpscoutdocs

import (
	"strings"

	"go.uber.org/zap"

	"github.com/helpscout/docs-go/internal/api"
)

// DefaultBaseURL is the production Docs API endpoint.
const DefaultBaseURL = "https://docsapi.helpscout.net/v1/"

// Client is a Help Scout Docs API client. Configuration is immutable after
// construction and no state is retained between calls, so a single Client
// is safe for concurrent use.
type Client struct {
	apiClient *api.Client
	baseURL   string
	logger    *zap.Logger
}

// New creates a new Docs client with the given API key.
//
// The API key is required and checked eagerly; no network call is made at
// construction time.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	baseURL := normalizeBaseURL(cfg.baseURL)
	logger := cfg.logger.Named("helpscoutdocs")

	apiOpts := []api.Option{
		api.WithLogger(logger),
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}

	apiClient, err := api.New(apiKey, baseURL, apiOpts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient: apiClient,
		baseURL:   baseURL,
		logger:    logger,
	}, nil
}

// BaseURL returns the normalized base URL the client issues requests against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// normalizeBaseURL strips any trailing slashes and appends exactly one.
func normalizeBaseURL(u string) string {
	return strings.TrimRight(u, "/") + "/"
}
