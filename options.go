package helpscoutdocs

import (
	"net/http"

	"go.uber.org/zap"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the Docs API base URL. Trailing slashes are normalized
// so the stored base URL always ends with exactly one.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The default client carries the
// fixed 30-second request timeout; a custom client is used as-is.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the diagnostic logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// updatePayload collects the fields explicitly provided to UpdateArticle.
// Only keys present in the map are sent on the wire, which is how an update
// distinguishes "not provided" from "provided as empty".
type updatePayload map[string]any

// UpdateOption sets a single article field for UpdateArticle.
type UpdateOption func(updatePayload)

// WithName sets the article title.
func WithName(name string) UpdateOption {
	return func(p updatePayload) {
		p["name"] = name
	}
}

// WithText sets the article body content.
func WithText(text string) UpdateOption {
	return func(p updatePayload) {
		p["text"] = text
	}
}

// WithStatus sets the article status.
func WithStatus(status ArticleStatus) UpdateOption {
	return func(p updatePayload) {
		p["status"] = status
	}
}

// WithCategories sets the category ID list. An empty (or nil) slice is sent
// as an explicit empty list, clearing the article's categories.
func WithCategories(categories []string) UpdateOption {
	return func(p updatePayload) {
		p["categories"] = nonNil(categories)
	}
}

// WithTags sets the tag list. An empty (or nil) slice is sent as an
// explicit empty list, clearing the article's tags.
func WithTags(tags []string) UpdateOption {
	return func(p updatePayload) {
		p["tags"] = nonNil(tags)
	}
}

// WithRelatedArticles sets the related-article ID list. An empty (or nil)
// slice is sent as an explicit empty list.
func WithRelatedArticles(related []string) UpdateOption {
	return func(p updatePayload) {
		p["related"] = nonNil(related)
	}
}

// WithSlug sets the custom URL slug.
func WithSlug(slug string) UpdateOption {
	return func(p updatePayload) {
		p["slug"] = slug
	}
}

// nonNil ensures a provided slice marshals as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
