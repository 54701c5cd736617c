package response

import "github.com/Guyuepp/food-reels/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
}

func NewUserFromDomain(u domain.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		ImageURL:  u.ImageURL,
		CreatedAt: u.CreatedAt.Format(DateTimeFormat),
	}
}

type Partner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contact_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

func NewPartnerFromDomain(p domain.FoodPartner) Partner {
	return Partner{
		ID:          p.ID,
		Name:        p.Name,
		ContactName: p.ContactName,
		Phone:       p.Phone,
		Address:     p.Address,
		Email:       p.Email,
		ImageURL:    p.ImageURL,
	}
}
