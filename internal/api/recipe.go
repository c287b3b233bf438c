package api

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/cravefit/backend/internal/middleware"
	"github.com/cravefit/backend/internal/nutrition"
	"github.com/cravefit/backend/internal/service"
	"github.com/cravefit/backend/pkg/logger"
)

// RecipeHandler serves the recipe browser and smart suggestions
type RecipeHandler struct {
	recipes service.RecipeSource
	meals   service.IMealService
	images  service.ImageResolver
	auth    middleware.TokenValidator
	log     *logger.Logger
}

func NewRecipeHandler(recipes service.RecipeSource, meals service.IMealService, images service.ImageResolver, auth middleware.TokenValidator, log *logger.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, meals: meals, images: images, auth: auth, log: log}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware(h.auth))
	{
		authed.GET("/recipes", h.List)
		authed.GET("/recipes/:id/ingredients", h.Ingredients)
		authed.GET("/recipes/:id/steps", h.Steps)
		authed.GET("/suggestions", h.Suggestions)
	}
}

const (
	defaultRecipePageSize = 20
	maxRecipePageSize     = 50

	// pool fetched from the collaborator before budget filtering.
	suggestionPoolSize = 30
	suggestionCount    = 3
)

func (h *RecipeHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultRecipePageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultRecipePageSize
	}
	if pageSize > maxRecipePageSize {
		pageSize = maxRecipePageSize
	}

	recipes, err := h.recipes.List(c.Request.Context(), page, pageSize)
	if err != nil {
		h.log.Warnw("recipe list failed", "page", page, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes, "page": page})
}

func (h *RecipeHandler) Ingredients(c *gin.Context) {
	ingredients, err := h.recipes.Ingredients(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Warnw("ingredient lookup failed", "recipe_id", c.Param("id"), "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

func (h *RecipeHandler) Steps(c *gin.Context) {
	steps, err := h.recipes.Instructions(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Warnw("instruction lookup failed", "recipe_id", c.Param("id"), "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"steps": steps})
}

// Suggestions filters a candidate pool against the caller's remaining daily
// budget for the requested category and returns the first three fits. Image
// lookups run concurrently and are best effort; a miss leaves the URL empty.
func (h *RecipeHandler) Suggestions(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	category := c.DefaultQuery("category", "quick")

	remaining, err := h.meals.RemainingBudget(c.Request.Context(), userID, dateParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute remaining budget"})
		return
	}

	pool, err := h.recipes.List(c.Request.Context(), 1, suggestionPoolSize)
	if err != nil {
		h.log.Warnw("suggestion pool fetch failed", "error", err)
		c.JSON(http.StatusOK, gin.H{"suggestions": []nutrition.Candidate{}, "remaining": remaining})
		return
	}

	fits := nutrition.SmartSuggestions(pool, category, remaining)
	if len(fits) > suggestionCount {
		fits = fits[:suggestionCount]
	}

	var wg sync.WaitGroup
	for i := range fits {
		if fits[i].ImageURL != "" {
			continue
		}
		wg.Add(1)
		go func(cand *nutrition.Candidate) {
			defer wg.Done()
			url, err := h.images.ResolveDishImage(c.Request.Context(), cand.Title)
			if err != nil {
				h.log.Debugw("suggestion image lookup failed", "title", cand.Title, "error", err)
				return
			}
			cand.ImageURL = url
		}(&fits[i])
	}
	wg.Wait()

	c.JSON(http.StatusOK, gin.H{"suggestions": fits, "remaining": remaining})
}
