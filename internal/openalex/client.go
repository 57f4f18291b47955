package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/scholarmesh/researcher-scout/internal/domain"
)

// Default configuration values for the OpenAlex client.
const (
	// DefaultBaseURL is the production OpenAlex API endpoint.
	DefaultBaseURL = "https://api.openalex.org"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default requests per second, matching the
	// limit OpenAlex publishes for its API.
	DefaultRateLimit = 10.0

	// DefaultBurstSize is the default burst size for rate limiting.
	DefaultBurstSize = 10
)

// authorsPerPage is the page size requested from the authors endpoint.
// A single page of 100 profiles covers far more than the pipeline ranks.
const authorsPerPage = 100

// authorsSortOrder ranks author results by total citations, most cited
// first.
const authorsSortOrder = "cited_by_count:desc"

// Config holds the OpenAlex client configuration.
type Config struct {
	// BaseURL is the API base URL. Defaults to DefaultBaseURL.
	BaseURL string

	// Email is sent with every request to join OpenAlex's polite pool,
	// which gets more consistent response times. Optional but recommended.
	Email string

	// Timeout is the request timeout.
	Timeout time.Duration

	// RateLimit is the maximum requests per second.
	RateLimit float64

	// BurstSize is the maximum burst of requests.
	BurstSize int
}

// applyDefaults fills in default values for unset fields.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RateLimit == 0 {
		c.RateLimit = DefaultRateLimit
	}
	if c.BurstSize == 0 {
		c.BurstSize = DefaultBurstSize
	}
}

// Client is an OpenAlex API client covering concept and author search.
type Client struct {
	config     Config
	httpClient *HTTPClient
}

// New creates a new OpenAlex client with the given configuration.
func New(cfg Config) *Client {
	cfg.applyDefaults()

	userAgent := "researcher-scout/1.0"
	if cfg.Email != "" {
		userAgent = fmt.Sprintf("researcher-scout/1.0 (mailto:%s)", cfg.Email)
	}

	httpClient := NewHTTPClient(HTTPClientConfig{
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
		BurstSize: cfg.BurstSize,
		UserAgent: userAgent,
	})

	return &Client{
		config:     cfg,
		httpClient: httpClient,
	}
}

// NewWithHTTPClient creates a client with a custom HTTP client.
// This is primarily useful for testing.
func NewWithHTTPClient(cfg Config, httpClient *HTTPClient) *Client {
	cfg.applyDefaults()
	return &Client{
		config:     cfg,
		httpClient: httpClient,
	}
}

// SearchConcepts looks up scholarly concepts matching the given topic.
// Results keep the API's relevance order, best match first.
func (c *Client) SearchConcepts(ctx context.Context, topic string) ([]domain.Concept, error) {
	searchURL, err := c.buildConceptsURL(topic)
	if err != nil {
		return nil, fmt.Errorf("failed to build concepts URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("concepts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, domain.NewExternalAPIError("OpenAlex", resp.StatusCode, string(body), nil)
	}

	var conceptsResp ConceptsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 10<<20)).Decode(&conceptsResp); err != nil {
		return nil, fmt.Errorf("failed to decode concepts response: %w", err)
	}

	concepts := make([]domain.Concept, 0, len(conceptsResp.Results))
	for i := range conceptsResp.Results {
		concepts = append(concepts, conceptToDomain(&conceptsResp.Results[i]))
	}

	return concepts, nil
}

// SearchAuthors fetches author profiles associated with the given concept,
// ordered by total citation count descending. A filtered country restricts
// results to authors whose last known institution is in that country.
// Profiles without any works are dropped because no citing score can be
// computed for them.
func (c *Client) SearchAuthors(ctx context.Context, conceptID string, country domain.CountryCode) ([]domain.Author, error) {
	searchURL, err := c.buildAuthorsURL(conceptID, country)
	if err != nil {
		return nil, fmt.Errorf("failed to build authors URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("authors request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, domain.NewExternalAPIError("OpenAlex", resp.StatusCode, string(body), nil)
	}

	var authorsResp AuthorsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 10<<20)).Decode(&authorsResp); err != nil {
		return nil, fmt.Errorf("failed to decode authors response: %w", err)
	}

	authors := make([]domain.Author, 0, len(authorsResp.Results))
	for i := range authorsResp.Results {
		author, err := authorToDomain(&authorsResp.Results[i])
		if err != nil {
			continue
		}
		authors = append(authors, author)
	}

	return authors, nil
}

// buildConceptsURL constructs the concepts search URL.
func (c *Client) buildConceptsURL(topic string) (string, error) {
	u, err := url.Parse(c.config.BaseURL + "/concepts")
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("search", topic)
	if c.config.Email != "" {
		query.Set("mailto", c.config.Email)
	}

	u.RawQuery = query.Encode()
	return u.String(), nil
}

// buildAuthorsURL constructs the authors search URL. The concept filter
// takes the concept ID exactly as returned by SearchConcepts; OpenAlex
// accepts the full https://openalex.org/C... form.
func (c *Client) buildAuthorsURL(conceptID string, country domain.CountryCode) (string, error) {
	u, err := url.Parse(c.config.BaseURL + "/authors")
	if err != nil {
		return "", err
	}

	filter := "concept.id:" + conceptID
	if country.Filtered() {
		filter += ",last_known_institution.country_code:" + country.String()
	}

	query := url.Values{}
	query.Set("filter", filter)
	query.Set("per-page", strconv.Itoa(authorsPerPage))
	query.Set("sort", authorsSortOrder)
	if c.config.Email != "" {
		query.Set("mailto", c.config.Email)
	}

	u.RawQuery = query.Encode()
	return u.String(), nil
}

// conceptToDomain converts an API concept to the domain model.
func conceptToDomain(result *ConceptResult) domain.Concept {
	return domain.Concept{
		ID:             result.ID,
		DisplayName:    result.DisplayName,
		RelevanceScore: result.RelevanceScore,
		Description:    result.Description,
		CitedByCount:   result.CitedByCount,
	}
}

// authorToDomain converts an API author profile to the domain model.
// The institution name falls back inside NewAuthor when the profile has
// no last known institution.
func authorToDomain(result *AuthorResult) (domain.Author, error) {
	association := ""
	if result.LastKnownInstitution != nil {
		association = result.LastKnownInstitution.DisplayName
	}

	return domain.NewAuthor(
		result.DisplayName,
		result.CitedByCount,
		result.WorksCount,
		result.SummaryStats.TwoYearMeanCitedness,
		association,
	)
}
