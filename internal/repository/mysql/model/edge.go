package model

import (
	"time"

	"github.com/Guyuepp/food-reels/domain"
)

// Edge is one like or save. The composite primary key is the uniqueness
// constraint on (user_id, food_id, kind).
type Edge struct {
	UserID    string    `gorm:"column:user_id;primaryKey;type:varchar(36)"`
	FoodID    string    `gorm:"column:food_id;primaryKey;type:varchar(36);index:idx_food_kind,priority:1"`
	Kind      string    `gorm:"column:kind;primaryKey;type:varchar(8);index:idx_food_kind,priority:2"`
	CreatedAt time.Time `gorm:"index"`
}

func (Edge) TableName() string {
	return "food_edges"
}

func NewEdgeFromDomain(e domain.Edge) Edge {
	return Edge{
		UserID:    e.UserID,
		FoodID:    e.FoodID,
		Kind:      string(e.Kind),
		CreatedAt: e.CreatedAt,
	}
}

func (m *Edge) ToDomain() domain.Edge {
	return domain.Edge{
		UserID:    m.UserID,
		FoodID:    m.FoodID,
		Kind:      domain.EdgeKind(m.Kind),
		CreatedAt: m.CreatedAt,
	}
}
