package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrRecognitionFailed  = errors.New("image recognition failed")
	ErrRecognitionTimeout = errors.New("image recognition timed out")
)

// RecognitionService submits an image to the prediction API and polls for
// the resulting label. Polling is bounded: a fixed number of attempts with a
// fixed interval, and the context cancels the wait early.
type RecognitionService struct {
	apiURL string
	token  string
	client *http.Client

	pollInterval time.Duration
	maxPolls     int
}

var _ Recognizer = (*RecognitionService)(nil)

func NewRecognitionService(apiURL, token string) *RecognitionService {
	return &RecognitionService{
		apiURL:       apiURL,
		token:        token,
		client:       &http.Client{Timeout: 30 * time.Second},
		pollInterval: 2 * time.Second,
		maxPolls:     15,
	}
}

type predictionResponse struct {
	ID     string   `json:"id"`
	Status string   `json:"status"` // starting, processing, succeeded, failed
	Output []string `json:"output"`
	Error  string   `json:"error"`
}

// RecognizeDish uploads the image and polls until the prediction succeeds,
// fails, or the attempt budget runs out.
func (s *RecognitionService) RecognizeDish(ctx context.Context, image []byte) (string, error) {
	id, err := s.createPrediction(ctx, image)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < s.maxPolls; attempt++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.pollInterval):
		}

		pred, err := s.getPrediction(ctx, id)
		if err != nil {
			return "", err
		}

		switch pred.Status {
		case "succeeded":
			if len(pred.Output) == 0 || strings.TrimSpace(pred.Output[0]) == "" {
				return "", ErrRecognitionFailed
			}
			return strings.TrimSpace(pred.Output[0]), nil
		case "failed":
			if pred.Error != "" {
				return "", fmt.Errorf("%w: %s", ErrRecognitionFailed, pred.Error)
			}
			return "", ErrRecognitionFailed
		}
		// starting or processing: keep polling
	}

	return "", ErrRecognitionTimeout
}

func (s *RecognitionService) createPrediction(ctx context.Context, image []byte) (string, error) {
	payload := map[string]interface{}{
		"input": map[string]string{
			"image": "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image),
		},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/predictions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to submit prediction: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("prediction API returned status %d: %s", resp.StatusCode, string(body))
	}

	var pred predictionResponse
	if err := json.Unmarshal(body, &pred); err != nil {
		return "", fmt.Errorf("failed to decode prediction response: %w", err)
	}
	if pred.ID == "" {
		return "", fmt.Errorf("prediction response missing id")
	}
	return pred.ID, nil
}

func (s *RecognitionService) getPrediction(ctx context.Context, id string) (*predictionResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"/predictions/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to poll prediction: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prediction API returned status %d", resp.StatusCode)
	}

	var pred predictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, fmt.Errorf("failed to decode prediction response: %w", err)
	}
	return &pred, nil
}
