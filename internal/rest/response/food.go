package response

import "github.com/Guyuepp/food-reels/domain"

type Food struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Video       string   `json:"video"`
	LikeCount   int64    `json:"like_count"`
	SaveCount   int64    `json:"save_count"`
	Partner     *Partner `json:"food_partner,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// NewFoodFromDomain: Domain -> Response
func NewFoodFromDomain(f *domain.Food) Food {
	res := Food{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Video:       f.Video,
		LikeCount:   f.LikeCount,
		SaveCount:   f.SaveCount,
		CreatedAt:   f.CreatedAt.Format(DateTimeFormat),
	}
	if f.Partner.ID != "" {
		p := Partner{ID: f.Partner.ID, Name: f.Partner.Name, ImageURL: f.Partner.ImageURL}
		res.Partner = &p
	}
	return res
}

func NewFoodsFromDomain(foods []domain.Food) []Food {
	res := make([]Food, len(foods))
	for i := range foods {
		res[i] = NewFoodFromDomain(&foods[i])
	}
	return res
}

type SavedFood struct {
	Food    Food   `json:"food"`
	SavedAt string `json:"saved_at"`
}

func NewSavedFoodsFromDomain(saved []domain.SavedFood) []SavedFood {
	res := make([]SavedFood, len(saved))
	for i := range saved {
		res[i] = SavedFood{
			Food:    NewFoodFromDomain(&saved[i].Food),
			SavedAt: saved[i].SavedAt.Format(DateTimeFormat),
		}
	}
	return res
}

// Toggle is the state of a like or save after the request
type Toggle struct {
	Active   bool  `json:"active"`
	NewCount int64 `json:"new_count"`
}

func NewToggleFromDomain(r domain.ToggleResult) Toggle {
	return Toggle{Active: r.Active, NewCount: r.NewCount}
}
