package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravefit/backend/internal/middleware"
	"github.com/cravefit/backend/internal/service"
	"github.com/cravefit/backend/pkg/logger"
)

// maxImageUpload caps photo submissions at 8 MiB.
const maxImageUpload = 8 << 20

// ImageHandler handles dish photo recognition, lookup and upload
type ImageHandler struct {
	images     *service.ImageService
	recognizer service.Recognizer
	limiter    *middleware.RateLimiter
	auth       middleware.TokenValidator
	log        *logger.Logger
}

func NewImageHandler(images *service.ImageService, recognizer service.Recognizer, limiter *middleware.RateLimiter, auth middleware.TokenValidator, log *logger.Logger) *ImageHandler {
	return &ImageHandler{images: images, recognizer: recognizer, limiter: limiter, auth: auth, log: log}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	images := router.Group("/images")
	images.Use(middleware.AuthMiddleware(h.auth))
	{
		images.POST("/recognize", h.limiter.RateLimitMiddleware(), h.Recognize)
		images.GET("/dish", h.DishImage)
		images.POST("/dish", h.UploadDishImage)
	}
}

// Recognize submits a dish photo to the recognition collaborator and returns
// the identified dish name. The call blocks while the prediction is polled;
// a timeout or a failed prediction comes back as 502.
func (h *ImageHandler) Recognize(c *gin.Context) {
	image, err := readImageFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish, err := h.recognizer.RecognizeDish(c.Request.Context(), image)
	if err != nil {
		h.log.Warnw("dish recognition failed", "error", err)
		if errors.Is(err, service.ErrRecognitionTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "recognition timed out"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "recognition service unavailable"})
		return
	}

	imageURL, err := h.images.ResolveDishImage(c.Request.Context(), dish)
	if err != nil {
		h.log.Debugw("image lookup after recognition failed", "dish", dish, "error", err)
		imageURL = ""
	}

	c.JSON(http.StatusOK, gin.H{"dish": dish, "image_url": imageURL})
}

func (h *ImageHandler) DishImage(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	url, err := h.images.ResolveDishImage(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrNoPhotoFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no image found"})
			return
		}
		h.log.Warnw("dish image lookup failed", "name", name, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "photo service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name, "image_url": url})
}

func (h *ImageHandler) UploadDishImage(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	image, err := readImageFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.images.UploadDishImage(c.Request.Context(), name, image)
	if err != nil {
		h.log.Errorw("dish image upload failed", "name", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"name": name, "image_url": url})
}

func readImageFile(c *gin.Context) ([]byte, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return nil, errors.New("image file is required")
	}
	if header.Size > maxImageUpload {
		return nil, errors.New("image exceeds the 8MB limit")
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.New("could not read image file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUpload+1))
	if err != nil {
		return nil, errors.New("could not read image file")
	}
	return data, nil
}
