package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc *services.FoodService
	RT  *services.RealtimeHub
}

func NewFoodController(svc *services.FoodService, rt *services.RealtimeHub) *FoodController {
	return &FoodController{Svc: svc, RT: rt}
}

// GET /food/search?q=apple
func (h *FoodController) SearchNutrition(c *gin.Context) {
	refs, err := h.Svc.SearchNutrition(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, refs)
}

type entryRequest struct {
	Name     string  `json:"name"`
	MealType string  `json:"mealType"`
	Quantity float64 `json:"quantity"`
	Notes    string  `json:"notes"`
	Date     string  `json:"date"` // "2006-01-02" or RFC3339; empty = now
}

func (r entryRequest) toInput() (services.EntryInput, error) {
	in := services.EntryInput{
		Name:     r.Name,
		MealType: r.MealType,
		Quantity: r.Quantity,
		Notes:    r.Notes,
	}
	if r.Date == "" {
		return in, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, r.Date, time.Local); err == nil {
			in.Date = &t
			return in, nil
		}
	}
	return in, errors.New("invalid date")
}

// POST /food
func (h *FoodController) AddEntry(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Svc.AddEntry(userID, input)
	if err != nil {
		writeFoodError(c, err)
		return
	}

	h.RT.Broadcast(userID, "entry.created", entry)
	c.JSON(http.StatusCreated, entry)
}

// GET /food
func (h *FoodController) ListEntries(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	entries, err := h.Svc.ListEntries(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GET /food/date/:date
func (h *FoodController) EntriesByDate(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Param("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	entries, err := h.Svc.ListEntriesByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// PUT /food/:id
func (h *FoodController) UpdateEntry(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	entry, err := h.Svc.UpdateEntry(userID, uint(entryID), services.EntryInput{
		Name:     req.Name,
		MealType: req.MealType,
		Quantity: req.Quantity,
		Notes:    req.Notes,
	})
	if err != nil {
		writeFoodError(c, err)
		return
	}

	h.RT.Broadcast(userID, "entry.updated", entry)
	c.JSON(http.StatusOK, entry)
}

// DELETE /food/:id
func (h *FoodController) DeleteEntry(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Svc.DeleteEntry(userID, uint(entryID)); err != nil {
		writeFoodError(c, err)
		return
	}

	h.RT.Broadcast(userID, "entry.deleted", gin.H{"id": entryID})
	c.JSON(http.StatusOK, gin.H{"message": "Food entry deleted"})
}

func writeFoodError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNutritionNotFound), errors.Is(err, services.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidEntry), errors.Is(err, services.ErrBadReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
