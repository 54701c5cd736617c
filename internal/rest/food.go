package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/internal/rest/middleware"
	"github.com/Guyuepp/food-reels/internal/rest/request"
	"github.com/Guyuepp/food-reels/internal/rest/response"
)

// MaxVideoBytes caps an uploaded food video.
const MaxVideoBytes = 100 << 20

// FoodHandler represent the httphandler for food
type FoodHandler struct {
	Service domain.FoodUsecase
}

func NewFoodHandler(svc domain.FoodUsecase) *FoodHandler {
	return &FoodHandler{
		Service: svc,
	}
}

// FetchFood will fetch a page of the feed
func (h *FoodHandler) FetchFood(c *gin.Context) {
	num, err := strconv.ParseInt(c.Query("num"), 10, 64)
	if err != nil {
		num = 0
	}

	foods, nextCursor, err := h.Service.Fetch(c.Request.Context(), c.Query("cursor"), num)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("X-Cursor", nextCursor)
	c.JSON(http.StatusOK, gin.H{
		"message":    "food items fetched successfully",
		"food_items": response.NewFoodsFromDomain(foods),
	})
}

// Like flips the like of the current user on a food
func (h *FoodHandler) Like(c *gin.Context) {
	h.toggle(c, h.Service.Like)
}

// Save flips the save of the current user on a food
func (h *FoodHandler) Save(c *gin.Context) {
	h.toggle(c, h.Service.Save)
}

type toggleFunc func(ctx context.Context, p domain.Principal, foodID string) (domain.ToggleResult, error)

func (h *FoodHandler) toggle(c *gin.Context, fn toggleFunc) {
	var req request.Toggle
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	res, err := fn(c.Request.Context(), p, req.FoodID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	status := http.StatusOK
	if res.Active {
		status = http.StatusCreated
	}
	c.JSON(status, response.NewToggleFromDomain(res))
}

// FetchSaved lists the foods saved by the current user
func (h *FoodHandler) FetchSaved(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	saved, err := h.Service.FetchSaved(c.Request.Context(), p)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "saved foods retrieved successfully",
		"saved_foods": response.NewSavedFoodsFromDomain(saved),
	})
}

// GetPartner returns a partner profile with its food items
func (h *FoodHandler) GetPartner(c *gin.Context) {
	partner, foods, err := h.Service.GetPartner(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "food partner retrieved successfully",
		"food_partner": response.NewPartnerFromDomain(partner),
		"food_items":   response.NewFoodsFromDomain(foods),
	})
}

// Create publishes a food from a multipart upload
func (h *FoodHandler) Create(c *gin.Context) {
	var req request.CreateFood
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	fh, err := c.FormFile("food")
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "video file \"food\" is required"})
		return
	}
	if fh.Size > MaxVideoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ResponseError{Message: fmt.Sprintf("video exceeds %d bytes", MaxVideoBytes)})
		return
	}

	file, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	defer file.Close()

	video, err := io.ReadAll(io.LimitReader(file, MaxVideoBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	f, err := h.Service.Create(c.Request.Context(), p, domain.NewFood{
		Name:        req.Name,
		Description: req.Description,
		Video:       video,
		FileName:    fh.Filename,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "food item created successfully",
		"food":    response.NewFoodFromDomain(&f),
	})
}
