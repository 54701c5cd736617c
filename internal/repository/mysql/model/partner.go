package model

import (
	"time"

	"github.com/Guyuepp/food-reels/domain"
)

type FoodPartner struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Name        string `gorm:"type:varchar(100);not null"`
	ContactName string `gorm:"column:contact_name;type:varchar(100);not null"`
	Phone       string `gorm:"type:varchar(32);not null"`
	Address     string `gorm:"type:varchar(255);not null"`
	Email       string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password    string `gorm:"type:varchar(255);not null"`
	ImageURL    string `gorm:"column:image_url;type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (FoodPartner) TableName() string {
	return "food_partners"
}

func (m *FoodPartner) ToDomain() domain.FoodPartner {
	return domain.FoodPartner{
		ID:          m.ID,
		Name:        m.Name,
		ContactName: m.ContactName,
		Phone:       m.Phone,
		Address:     m.Address,
		Email:       m.Email,
		Password:    m.Password,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func NewFoodPartnerFromDomain(p *domain.FoodPartner) *FoodPartner {
	return &FoodPartner{
		ID:          p.ID,
		Name:        p.Name,
		ContactName: p.ContactName,
		Phone:       p.Phone,
		Address:     p.Address,
		Email:       p.Email,
		Password:    p.Password,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// All lists every model owned by the schema, in creation order.
func All() []any {
	return []any{&User{}, &FoodPartner{}, &Food{}, &Edge{}}
}
