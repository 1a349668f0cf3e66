package controllers

import (
	"errors"
	"net/http"

	"github.com/diogofgomespinheiro/daily-diet-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

type CreateMealInput struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description" binding:"required"`
	IsDietCompliant *bool  `json:"isDietCompliant" binding:"required"` // pointer so false passes required
}

func (h *MealController) ListMeals(c *gin.Context) {
	userID := c.GetString("userID")

	meals, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealController) CreateMeal(c *gin.Context) {
	var input CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetString("userID")

	meal, err := h.Svc.Create(c.Request.Context(), userID, input.Name, input.Description, *input.IsDietCompliant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

func (h *MealController) GetMeal(c *gin.Context) {
	mealID, ok := mealIDParam(c)
	if !ok {
		return
	}
	userID := c.GetString("userID")

	meal, err := h.Svc.Get(c.Request.Context(), userID, mealID)
	if errors.Is(err, services.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *MealController) UpdateMeal(c *gin.Context) {
	var upd services.MealUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetString("userID")

	meal, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), upd)
	if errors.Is(err, services.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	mealID, ok := mealIDParam(c)
	if !ok {
		return
	}
	userID := c.GetString("userID")

	err := h.Svc.Delete(c.Request.Context(), userID, mealID)
	if errors.Is(err, services.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MealController) GetMetrics(c *gin.Context) {
	userID := c.GetString("userID")

	meals, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.ComputeMealMetrics(meals))
}

// mealIDParam rejects ids that are not UUIDs before they hit the store.
func mealIDParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return "", false
	}
	return id, true
}
