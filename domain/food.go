package domain

import (
	"context"
	"time"
)

// Food is representing a short-form food video published by a partner
type Food struct {
	ID          string      // Unique identifier
	Name        string      // Dish name
	Description string      // Dish description
	Video       string      // Reference url returned by the content store
	Partner     FoodPartner // Owner, only ID is filled by the db layer
	LikeCount   int64       // Number of like edges
	SaveCount   int64       // Number of save edges
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SavedFood is a save edge joined with the food it points to
type SavedFood struct {
	UserID  string
	Food    Food
	SavedAt time.Time
}

// FoodDBRepository defines the contract for food persistence
type FoodDBRepository interface {
	// Fetch retrieves a page of foods ordered by creation time.
	// cursor: encoded creation time of the last item, empty for the first page.
	Fetch(ctx context.Context, cursor string, num int64) ([]Food, error)

	// GetByID returns ErrNotFound if the food doesn't exist.
	GetByID(ctx context.Context, id string) (Food, error)

	GetByIDs(ctx context.Context, ids []string) ([]Food, error)

	// FetchByPartner lists all foods owned by a partner, newest first.
	FetchByPartner(ctx context.Context, partnerID string) ([]Food, error)

	// FetchSaved lists the save edges of a user joined with their foods, newest first.
	FetchSaved(ctx context.Context, userID string) ([]SavedFood, error)

	// Store creates a new food; counters always start at zero.
	Store(ctx context.Context, f *Food) error

	// FetchIDs walks food ids in ascending order starting after cursor.
	FetchIDs(ctx context.Context, cursor string, limit int64) ([]string, error)
}

// FoodRepository is the coordinated repository used by the usecase layer.
type FoodRepository interface {
	FoodDBRepository

	// InvalidateFeed drops cached feed pages after counters or content changed.
	InvalidateFeed(ctx context.Context)
}

type FoodCache interface {
	GetFeedWithLogicalExpire(ctx context.Context) (res []Food, expired bool, err error)
	SetFeedWithLogicalExpire(ctx context.Context, foods []Food, ttl time.Duration) error
	DeleteFeed(ctx context.Context) error
}

// NewFood carries the fields a partner submits to publish a food.
type NewFood struct {
	Name        string
	Description string
	Video       []byte
	FileName    string
}

type FoodUsecase interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Food, string, error)
	Like(ctx context.Context, p Principal, foodID string) (ToggleResult, error)
	Save(ctx context.Context, p Principal, foodID string) (ToggleResult, error)
	FetchSaved(ctx context.Context, p Principal) ([]SavedFood, error)
	GetPartner(ctx context.Context, id string) (FoodPartner, []Food, error)
	Create(ctx context.Context, p Principal, in NewFood) (Food, error)
}
