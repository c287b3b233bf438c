package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cravefit/backend/config"
	"github.com/cravefit/backend/internal/models"
	"github.com/cravefit/backend/pkg/logger"
)

// ImageService resolves dish names to image URLs through a cache-then-
// fallback sequence: dish_images table first, then the photo-search
// collaborator, persisting hits for next time. User-uploaded images go to
// S3. Every step is best effort; resolution failures surface as an empty
// URL, never as a request-killing error upstream.
type ImageService struct {
	db     *gorm.DB
	photos PhotoSearcher
	s3cfg  *config.S3Config
	log    *logger.Logger
}

var _ ImageResolver = (*ImageService)(nil)

func NewImageService(db *gorm.DB, photos PhotoSearcher, s3cfg *config.S3Config, log *logger.Logger) *ImageService {
	return &ImageService{db: db, photos: photos, s3cfg: s3cfg, log: log}
}

// ResolveDishImage returns an image URL for the dish name: cached row,
// fuzzy-matched cached row, or a fresh photo search whose result is stored
// for the next lookup.
func (s *ImageService) ResolveDishImage(ctx context.Context, dishName string) (string, error) {
	normalized := NormalizeDishName(dishName)
	if normalized == "" {
		return "", fmt.Errorf("empty dish name")
	}

	var cached models.DishImage
	err := s.db.WithContext(ctx).Where("normalized_name = ?", normalized).First(&cached).Error
	if err == nil {
		return cached.ImageURL, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	if url, ok := s.fuzzyLookup(ctx, normalized); ok {
		return url, nil
	}

	url, err := s.photos.SearchPhoto(ctx, dishName)
	if err != nil {
		s.log.Warnw("photo search failed", "dish", dishName, "error", err)
		return "", err
	}

	// Best effort: a failed cache write just means another search next time.
	if err := s.db.WithContext(ctx).Create(&models.DishImage{
		ID:             uuid.New(),
		NormalizedName: normalized,
		DisplayName:    dishName,
		ImageURL:       url,
		Source:         "search",
	}).Error; err != nil {
		s.log.Debugw("dish image cache write failed", "dish", dishName, "error", err)
	}

	return url, nil
}

// UploadDishImage stores a user-supplied image in S3 and records it as the
// canonical image for the dish name.
func (s *ImageService) UploadDishImage(ctx context.Context, dishName string, image []byte) (string, error) {
	if s.s3cfg == nil {
		return "", fmt.Errorf("image storage is not configured")
	}

	fileName := fmt.Sprintf("dish-images/%s.jpg", uuid.New().String())
	_, err := s.s3cfg.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3cfg.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(image),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3cfg.BucketName, fileName)

	normalized := NormalizeDishName(dishName)
	if normalized != "" {
		s.db.WithContext(ctx).Where("normalized_name = ?", normalized).Delete(&models.DishImage{})
		if err := s.db.WithContext(ctx).Create(&models.DishImage{
			ID:             uuid.New(),
			NormalizedName: normalized,
			DisplayName:    dishName,
			ImageURL:       url,
			Source:         "upload",
		}).Error; err != nil {
			s.log.Debugw("dish image record failed", "dish", dishName, "error", err)
		}
	}

	return url, nil
}

// fuzzyLookup does a single pass over rows sharing the first token of the
// name and picks the one with the most token overlap. Shallow on purpose:
// "chicken curry bowl" should hit a cached "chicken curry", nothing fancier.
func (s *ImageService) fuzzyLookup(ctx context.Context, normalized string) (string, bool) {
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return "", false
	}

	var rows []models.DishImage
	if err := s.db.WithContext(ctx).
		Where("normalized_name LIKE ?", "%"+tokens[0]+"%").
		Limit(25).
		Find(&rows).Error; err != nil || len(rows) == 0 {
		return "", false
	}

	bestScore := 0
	bestURL := ""
	for _, row := range rows {
		score := tokenOverlap(tokens, strings.Fields(row.NormalizedName))
		if score > bestScore {
			bestScore = score
			bestURL = row.ImageURL
		}
	}

	// Require at least two shared tokens so "chicken soup" does not claim
	// every chicken dish.
	if bestScore >= 2 || (bestScore == 1 && len(tokens) == 1) {
		return bestURL, true
	}
	return "", false
}

func tokenOverlap(a, b []string) int {
	set := make(map[string]struct{}, len(b))
	for _, t := range b {
		set[t] = struct{}{}
	}
	n := 0
	for _, t := range a {
		if _, ok := set[t]; ok {
			n++
		}
	}
	return n
}

// NormalizeDishName lowercases, trims and collapses inner whitespace so
// lookups are stable across formatting differences.
func NormalizeDishName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
