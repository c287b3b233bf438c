package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravefit/backend/internal/middleware"
	"github.com/cravefit/backend/internal/nutrition"
	"github.com/cravefit/backend/internal/service"
)

// QuizHandler handles craving quiz submissions and insights
type QuizHandler struct {
	quiz service.IQuizService
	auth middleware.TokenValidator
}

func NewQuizHandler(quiz service.IQuizService, auth middleware.TokenValidator) *QuizHandler {
	return &QuizHandler{quiz: quiz, auth: auth}
}

func (h *QuizHandler) RegisterRoutes(router *gin.RouterGroup) {
	quiz := router.Group("/quiz")
	quiz.Use(middleware.AuthMiddleware(h.auth))
	{
		quiz.POST("", h.Submit)
		quiz.GET("/insights", h.Insights)
	}
}

type quizRequest struct {
	Mood             string `json:"mood"`
	Texture          string `json:"texture"`
	Taste            string `json:"taste"`
	Hunger           string `json:"hunger"`
	Diet             string `json:"diet"`
	HealthPreference *int   `json:"health_preference"`
}

func (h *QuizHandler) Submit(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.quiz.Submit(c.Request.Context(), userID, nutrition.QuizAnswers{
		Mood:    req.Mood,
		Texture: req.Texture,
		Taste:   req.Taste,
		Hunger:  req.Hunger,
		Diet:    req.Diet,
	}, req.HealthPreference)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process quiz"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *QuizHandler) Insights(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	insight, err := h.quiz.Insights(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze cravings"})
		return
	}

	c.JSON(http.StatusOK, insight)
}
