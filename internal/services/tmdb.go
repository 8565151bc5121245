// TMDB implementation of [CatalogService].
//
// Endpoint shapes based on https://developer.themoviedb.org/reference
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

const tmdbTitleURL = "https://www.themoviedb.org/tv"

var _ CatalogService = (*TMDBService)(nil)

// TMDBService fetches title metadata from the TMDB API.
type TMDBService struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// NewTMDBService creates a catalog client from catalog configuration.
func NewTMDBService(cfg shared.CatalogConfig, client *http.Client) *TMDBService {
	if client == nil {
		client = http.DefaultClient
	}

	language := cfg.Language
	if language == "" {
		language = "en-US"
	}

	return &TMDBService{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		language:   language,
		httpClient: client,
	}
}

// doRequest performs a GET against the catalog API and decodes the JSON
// response. A missing API key fails before any request is issued.
func (s *TMDBService) doRequest(ctx context.Context, endpoint string, params url.Values, result any) error {
	if s.apiKey == "" {
		return fmt.Errorf("%w: catalog API key is not set", shared.ErrMissingConfig)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", s.apiKey)
	params.Set("language", s.language)

	apiURL := fmt.Sprintf("%s%s?%s", s.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", shared.ErrTitleNotFound, endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: catalog API status %d", shared.ErrServerError, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrServerError, err)
	}

	return nil
}

// Popular retrieves one page of trending titles ordered by popularity.
// Pages are independent; nothing is cached between calls.
func (s *TMDBService) Popular(ctx context.Context, page int) ([]models.CatalogItem, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))

	var response struct {
		Page    int                  `json:"page"`
		Results []models.CatalogItem `json:"results"`
	}

	if err := s.doRequest(ctx, "/tv/popular", params, &response); err != nil {
		return nil, err
	}

	return response.Results, nil
}

// Detail retrieves a single title by id. The detail shape carries named
// genres instead of genre ids.
func (s *TMDBService) Detail(ctx context.Context, id int) (*models.CatalogItem, error) {
	var item models.CatalogItem
	if err := s.doRequest(ctx, fmt.Sprintf("/tv/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// TitleURL returns the public TMDB page for a title, for opening in a
// browser.
func TitleURL(id int) string {
	return fmt.Sprintf("%s/%d", tmdbTitleURL, id)
}
