package domain

import (
	"context"
	"time"
)

// FoodPartner is a restaurant or vendor that publishes food items.
type FoodPartner struct {
	ID          string
	Name        string
	ContactName string
	Phone       string
	Address     string
	Email       string
	Password    string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FoodPartnerRepository defines the contract for food partner persistence.
type FoodPartnerRepository interface {
	GetByID(ctx context.Context, id string) (FoodPartner, error)
	GetByEmail(ctx context.Context, email string) (FoodPartner, error)
	GetByIDs(ctx context.Context, ids []string) ([]FoodPartner, error)
	Insert(ctx context.Context, p *FoodPartner) error
	Exists(ctx context.Context, id string) (bool, error)
}
