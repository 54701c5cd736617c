package request

// Toggle is the body of the like and save endpoints
type Toggle struct {
	FoodID string `json:"food_id" binding:"required"`
}

// CreateFood is the multipart form of a new food; the video arrives as file field "food".
type CreateFood struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
}
