package helpscoutdocs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"go.uber.org/zap"
)

// ArticleStatus is the publication status of an article.
type ArticleStatus string

// Article statuses accepted by the Docs API.
const (
	StatusPublished    ArticleStatus = "published"
	StatusNotPublished ArticleStatus = "notpublished"
	StatusDraft        ArticleStatus = "draft"
)

// Article is a Docs article as returned by the API. The client never
// retains article state; every value is the result of a single round trip.
type Article struct {
	ID           string        `json:"id,omitempty"`
	Number       int           `json:"number,omitempty"`
	CollectionID string        `json:"collectionId,omitempty"`
	Slug         string        `json:"slug,omitempty"`
	Status       ArticleStatus `json:"status,omitempty"`
	HasDraft     bool          `json:"hasDraft,omitempty"`
	Name         string        `json:"name,omitempty"`
	Text         string        `json:"text,omitempty"`
	Categories   []string      `json:"categories,omitempty"`
	Related      []string      `json:"related,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	PublicURL    string        `json:"publicUrl,omitempty"`
	Popularity   float64       `json:"popularity,omitempty"`
	ViewCount    int           `json:"viewCount,omitempty"`
	CreatedBy    int           `json:"createdBy,omitempty"`
	UpdatedBy    int           `json:"updatedBy,omitempty"`
	CreatedAt    time.Time     `json:"createdAt,omitempty"`
	UpdatedAt    time.Time     `json:"updatedAt,omitempty"`
}

// CreateArticleParams are the inputs for CreateArticle. CollectionID, Name
// and Text are required. Status defaults to StatusNotPublished. The
// remaining fields are optional and are omitted from the request body when
// left empty.
type CreateArticleParams struct {
	CollectionID    string
	Name            string
	Text            string
	Status          ArticleStatus
	Categories      []string
	Tags            []string
	RelatedArticles []string
	Slug            string
}

// Validate checks the required fields and the status enumeration.
func (p CreateArticleParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.CollectionID, validation.Required),
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Text, validation.Required),
		validation.Field(&p.Status, validation.In(StatusPublished, StatusNotPublished, StatusDraft)),
	)
}

// createArticleBody is the wire form of a create request. Optional fields
// carry omitempty so empty values are omitted rather than sent as empty.
type createArticleBody struct {
	CollectionID string        `json:"collectionId"`
	Name         string        `json:"name"`
	Text         string        `json:"text"`
	Status       ArticleStatus `json:"status"`
	Categories   []string      `json:"categories,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	Related      []string      `json:"related,omitempty"`
	Slug         string        `json:"slug,omitempty"`
}

// CreateArticleResult is the outcome of CreateArticle. Exactly one of the
// three shapes is populated:
//
//   - Created is true when the server replied 201 with an empty body; ID is
//     then taken from the final Location header path segment and may be
//     empty if the header was absent.
//   - Article is set when the server returned a JSON payload; ID mirrors
//     the payload's article ID when present.
//   - StatusCode and RawBody are set when the success payload was not
//     valid JSON.
type CreateArticleResult struct {
	ID         string
	Created    bool
	Article    *Article
	StatusCode int
	RawBody    string
}

// CreateArticle creates a new article in a collection.
func (c *Client) CreateArticle(ctx context.Context, params CreateArticleParams) (*CreateArticleResult, error) {
	if err := params.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	status := params.Status
	if status == "" {
		status = StatusNotPublished
	}

	body := createArticleBody{
		CollectionID: params.CollectionID,
		Name:         params.Name,
		Text:         params.Text,
		Status:       status,
		Categories:   params.Categories,
		Tags:         params.Tags,
		Related:      params.RelatedArticles,
		Slug:         params.Slug,
	}

	resp, err := c.apiClient.Do(ctx, http.MethodPost, "articles", body)
	if err != nil {
		return nil, wrapError(err)
	}

	// The Docs API may reply 201 with an empty body, identifying the new
	// article only via the Location header.
	if resp.StatusCode == http.StatusCreated && len(resp.Body) == 0 {
		result := &CreateArticleResult{Created: true}
		if loc := resp.Header.Get("Location"); loc != "" {
			result.ID = loc[strings.LastIndex(loc, "/")+1:]
		}
		c.logger.Debug("article created",
			zap.String("id", result.ID),
			zap.String("collection_id", params.CollectionID))
		return result, nil
	}

	article, err := decodeArticle(resp.Body)
	if err != nil {
		// Success status with a payload that is not valid JSON: fall
		// back to the raw status and text.
		return &CreateArticleResult{
			StatusCode: resp.StatusCode,
			RawBody:    string(resp.Body),
		}, nil
	}

	return &CreateArticleResult{
		ID:      article.ID,
		Article: article,
	}, nil
}

// UpdateArticle updates an existing article. Only the fields named by the
// given options are sent; an explicitly provided empty value IS sent,
// unlike CreateArticle's empty-value omission. At least one option is
// required, otherwise a ValidationError wrapping ErrNoUpdateFields is
// returned without issuing a request.
func (c *Client) UpdateArticle(ctx context.Context, articleID string, opts ...UpdateOption) (*Article, error) {
	if articleID == "" {
		return nil, &ValidationError{Err: validation.NewError("validation_required", "article ID is required")}
	}

	payload := updatePayload{}
	for _, opt := range opts {
		opt(payload)
	}
	if len(payload) == 0 {
		return nil, &ValidationError{Err: ErrNoUpdateFields}
	}

	resp, err := c.apiClient.Do(ctx, http.MethodPut, "articles/"+url.PathEscape(articleID), payload)
	if err != nil {
		return nil, wrapError(err)
	}

	article, err := decodeArticle(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode article: %w", err)
	}
	return article, nil
}

// GetArticle retrieves an article by ID.
func (c *Client) GetArticle(ctx context.Context, articleID string) (*Article, error) {
	if articleID == "" {
		return nil, &ValidationError{Err: validation.NewError("validation_required", "article ID is required")}
	}

	resp, err := c.apiClient.Do(ctx, http.MethodGet, "articles/"+url.PathEscape(articleID), nil)
	if err != nil {
		return nil, wrapError(err)
	}

	article, err := decodeArticle(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode article: %w", err)
	}
	return article, nil
}

// DeleteArticle deletes an article by ID.
func (c *Client) DeleteArticle(ctx context.Context, articleID string) error {
	if articleID == "" {
		return &ValidationError{Err: validation.NewError("validation_required", "article ID is required")}
	}

	_, err := c.apiClient.Do(ctx, http.MethodDelete, "articles/"+url.PathEscape(articleID), nil)
	if err != nil {
		return wrapError(err)
	}

	c.logger.Debug("article deleted", zap.String("id", articleID))
	return nil
}

// decodeArticle parses a response payload into an Article. Single-article
// responses arrive either bare or wrapped in an {"article": ...} envelope;
// both forms are accepted.
func decodeArticle(data []byte) (*Article, error) {
	var envelope struct {
		Article *Article `json:"article"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Article != nil {
		return envelope.Article, nil
	}

	var article Article
	if err := json.Unmarshal(data, &article); err != nil {
		return nil, err
	}
	return &article, nil
}
