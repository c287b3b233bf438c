package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cravefit/backend/internal/nutrition"
	"github.com/cravefit/backend/pkg/logger"
)

// RecipeAPIService talks to the recipe/nutrition collaborator. Results are
// cached in Redis with a TTL; the cache is injected rather than held in
// package globals so tests and callers control its lifetime.
type RecipeAPIService struct {
	apiURL string
	apiKey string
	client *http.Client
	cache  *redis.Client
	log    *logger.Logger
}

var _ RecipeSource = (*RecipeAPIService)(nil)

const (
	recipeCacheTTL  = 15 * time.Minute
	detailsCacheTTL = time.Hour
)

func NewRecipeAPIService(apiURL, apiKey string, cache *redis.Client, log *logger.Logger) *RecipeAPIService {
	return &RecipeAPIService{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
		cache:  cache,
		log:    log,
	}
}

type recipePayload struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Image    string  `json:"image"`
}

// List fetches a page of recipes.
func (s *RecipeAPIService) List(ctx context.Context, page, pageSize int) ([]nutrition.Candidate, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 20
	}

	key := fmt.Sprintf("recipes:list:%d:%d", page, pageSize)
	if cached, ok := s.cacheGet(ctx, key); ok {
		return cached, nil
	}

	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("pageSize", fmt.Sprint(pageSize))

	recipes, err := s.fetchRecipes(ctx, "/recipes", q)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, recipes, recipeCacheTTL)
	return recipes, nil
}

// SearchByEnergy fetches recipes inside a kcal window.
func (s *RecipeAPIService) SearchByEnergy(ctx context.Context, minKcal, maxKcal float64, limit int) ([]nutrition.Candidate, error) {
	key := fmt.Sprintf("recipes:energy:%.0f:%.0f:%d", minKcal, maxKcal, limit)
	if cached, ok := s.cacheGet(ctx, key); ok {
		return cached, nil
	}

	q := url.Values{}
	q.Set("minCalories", fmt.Sprintf("%.0f", minKcal))
	q.Set("maxCalories", fmt.Sprintf("%.0f", maxKcal))
	q.Set("number", fmt.Sprint(limit))

	recipes, err := s.fetchRecipes(ctx, "/recipes/findByNutrients", q)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, recipes, recipeCacheTTL)
	return recipes, nil
}

// SearchByCarbs fetches recipes inside a carb-gram window.
func (s *RecipeAPIService) SearchByCarbs(ctx context.Context, minG, maxG float64, limit int) ([]nutrition.Candidate, error) {
	key := fmt.Sprintf("recipes:carbs:%.0f:%.0f:%d", minG, maxG, limit)
	if cached, ok := s.cacheGet(ctx, key); ok {
		return cached, nil
	}

	q := url.Values{}
	q.Set("minCarbs", fmt.Sprintf("%.0f", minG))
	q.Set("maxCarbs", fmt.Sprintf("%.0f", maxG))
	q.Set("number", fmt.Sprint(limit))

	recipes, err := s.fetchRecipes(ctx, "/recipes/findByNutrients", q)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, recipes, recipeCacheTTL)
	return recipes, nil
}

// Ingredients fetches the ingredient list for a recipe.
func (s *RecipeAPIService) Ingredients(ctx context.Context, recipeID string) ([]string, error) {
	return s.fetchDetails(ctx, recipeID, "ingredients")
}

// Instructions fetches the step-by-step instructions for a recipe.
func (s *RecipeAPIService) Instructions(ctx context.Context, recipeID string) ([]string, error) {
	return s.fetchDetails(ctx, recipeID, "instructions")
}

func (s *RecipeAPIService) fetchRecipes(ctx context.Context, path string, q url.Values) ([]nutrition.Candidate, error) {
	body, err := s.get(ctx, path, q)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Recipes []recipePayload `json:"recipes"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode recipe response: %w", err)
	}

	out := make([]nutrition.Candidate, 0, len(payload.Recipes))
	for _, r := range payload.Recipes {
		out = append(out, nutrition.Candidate{
			ID:       r.ID,
			Title:    r.Title,
			Calories: r.Calories,
			Protein:  r.Protein,
			Carbs:    r.Carbs,
			Fats:     r.Fats,
			Fiber:    r.Fiber,
			ImageURL: r.Image,
		})
	}
	return out, nil
}

func (s *RecipeAPIService) fetchDetails(ctx context.Context, recipeID, kind string) ([]string, error) {
	key := fmt.Sprintf("recipes:details:%s:%s", recipeID, kind)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var items []string
			if json.Unmarshal([]byte(raw), &items) == nil {
				return items, nil
			}
		}
	}

	body, err := s.get(ctx, fmt.Sprintf("/recipes/%s/%s", recipeID, kind), nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Items []string `json:"items"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", kind, err)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(payload.Items); err == nil {
			s.cache.Set(ctx, key, raw, detailsCacheTTL)
		}
	}
	return payload.Items, nil
}

func (s *RecipeAPIService) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	u := s.apiURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call recipe API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

func (s *RecipeAPIService) cacheGet(ctx context.Context, key string) ([]nutrition.Candidate, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var recipes []nutrition.Candidate
	if err := json.Unmarshal([]byte(raw), &recipes); err != nil {
		return nil, false
	}
	return recipes, true
}

func (s *RecipeAPIService) cacheSet(ctx context.Context, key string, recipes []nutrition.Candidate, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(recipes)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, ttl).Err(); err != nil {
		s.log.Debugw("recipe cache write failed", "key", key, "error", err)
	}
}
