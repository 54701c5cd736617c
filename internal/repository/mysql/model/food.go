package model

import (
	"time"

	"github.com/Guyuepp/food-reels/domain"
)

type Food struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)"`
	Name          string    `gorm:"type:varchar(50);not null"`
	Description   string    `gorm:"type:varchar(500);not null"`
	Video         string    `gorm:"type:varchar(512);not null"`
	FoodPartnerID string    `gorm:"column:food_partner_id;type:varchar(36);not null;index"`
	LikeCount     int64     `gorm:"column:like_count;not null;default:0"`
	SaveCount     int64     `gorm:"column:save_count;not null;default:0"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

func (Food) TableName() string {
	return "foods"
}

func (m *Food) ToDomain() domain.Food {
	return domain.Food{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Video:       m.Video,
		Partner: domain.FoodPartner{
			ID: m.FoodPartnerID,
		},
		LikeCount: m.LikeCount,
		SaveCount: m.SaveCount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewFoodFromDomain(f *domain.Food) *Food {
	return &Food{
		ID:            f.ID,
		Name:          f.Name,
		Description:   f.Description,
		Video:         f.Video,
		FoodPartnerID: f.Partner.ID,
		LikeCount:     f.LikeCount,
		SaveCount:     f.SaveCount,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}
