package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNoPhotoFound is returned when the photo search has no usable match.
var ErrNoPhotoFound = errors.New("no photo found")

// PhotoService queries the stock-photo collaborator for a best-matching
// image URL. One attempt, no retry; callers degrade on failure.
type PhotoService struct {
	apiURL string
	apiKey string
	client *http.Client
}

var _ PhotoSearcher = (*PhotoService)(nil)

func NewPhotoService(apiURL, apiKey string) *PhotoService {
	return &PhotoService{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchPhoto returns the URL of the first photo matching the query.
func (s *PhotoService) SearchPhoto(ctx context.Context, query string) (string, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call photo API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("photo API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result struct {
		Photos []struct {
			Src struct {
				Medium string `json:"medium"`
				Large  string `json:"large"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode photo response: %w", err)
	}

	if len(result.Photos) == 0 {
		return "", ErrNoPhotoFound
	}
	if u := result.Photos[0].Src.Large; u != "" {
		return u, nil
	}
	if u := result.Photos[0].Src.Medium; u != "" {
		return u, nil
	}
	return "", ErrNoPhotoFound
}
