package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cravefit/backend/internal/middleware"
	"github.com/cravefit/backend/internal/models"
	"github.com/cravefit/backend/internal/service"
	"github.com/cravefit/backend/pkg/logger"
)

// MealHandler handles meal logging, water logging and day views
type MealHandler struct {
	meals  service.IMealService
	titles service.TitleGenerator
	images service.ImageResolver
	auth   middleware.TokenValidator
	log    *logger.Logger
}

func NewMealHandler(meals service.IMealService, titles service.TitleGenerator, images service.ImageResolver, auth middleware.TokenValidator, log *logger.Logger) *MealHandler {
	return &MealHandler{meals: meals, titles: titles, images: images, auth: auth, log: log}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware(h.auth))
	{
		authed.POST("/meals", h.AddMeal)
		authed.GET("/meals", h.ListMeals)
		authed.DELETE("/meals/:id", h.DeleteMeal)
		authed.POST("/meals/titles", h.SuggestTitles)
		authed.GET("/progress/daily", h.DailyProgress)
		authed.GET("/progress/weekly", h.WeeklyProgress)
		authed.POST("/water", h.AddWater)
		authed.GET("/water", h.WaterTotal)
	}
}

type addMealRequest struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories" binding:"required,gt=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
	Fiber    float64 `json:"fiber" binding:"gte=0"`
	Date     string  `json:"date"`
	ImageURL string  `json:"image_url"`
}

func (h *MealHandler) AddMeal(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req addMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal := &models.Meal{
		UserID:   userID,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Fiber:    req.Fiber,
		Date:     req.Date,
		ImageURL: req.ImageURL,
	}

	// Image enrichment is decoration: a resolver failure must not block the log.
	if meal.ImageURL == "" && h.images != nil {
		if url, err := h.images.ResolveDishImage(c.Request.Context(), req.Name); err == nil {
			meal.ImageURL = url
		} else {
			h.log.Debugw("dish image resolution failed", "dish", req.Name, "error", err)
		}
	}

	created, err := h.meals.AddMeal(c.Request.Context(), meal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log meal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal": created})
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	meals, err := h.meals.ListMeals(c.Request.Context(), userID, dateParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := h.meals.DeleteMeal(c.Request.Context(), userID, mealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

type suggestTitlesRequest struct {
	Description string `json:"description" binding:"required"`
}

func (h *MealHandler) SuggestTitles(c *gin.Context) {
	if _, ok := middleware.UserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req suggestTitlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	titles, err := h.titles.SuggestMealTitles(c.Request.Context(), req.Description)
	if err != nil {
		h.log.Warnw("title generation failed", "error", err)
		// Degrade to an empty list, the client falls back to manual entry.
		c.JSON(http.StatusOK, gin.H{"titles": []string{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"titles": titles})
}

func (h *MealHandler) DailyProgress(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	progress, err := h.meals.DailyProgress(c.Request.Context(), userID, dateParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily progress"})
		return
	}

	c.JSON(http.StatusOK, progress)
}

// WeeklyProgress returns the trailing 7 days of logged calories vs goal,
// ending at ?date= (default today), oldest day first.
func (h *MealHandler) WeeklyProgress(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	days, err := h.meals.WeeklyIntake(c.Request.Context(), userID, dateParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load weekly progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

type addWaterRequest struct {
	AmountML int    `json:"amount_ml" binding:"required,gt=0"`
	Date     string `json:"date"`
}

func (h *MealHandler) AddWater(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req addWaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.meals.AddWater(c.Request.Context(), userID, req.Date, req.AmountML); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log water"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "water logged"})
}

func (h *MealHandler) WaterTotal(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	total, err := h.meals.WaterTotal(c.Request.Context(), userID, dateParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get water total"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_ml": total})
}

// dateParam reads ?date=YYYY-MM-DD, defaulting to today.
func dateParam(c *gin.Context) string {
	if date := c.Query("date"); date != "" {
		return date
	}
	return time.Now().Format("2006-01-02")
}
