package request

import "github.com/Guyuepp/food-reels/domain"

type RegisterUser struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type Login struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterPartner struct {
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contact_name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *RegisterPartner) ToDomain() domain.FoodPartner {
	return domain.FoodPartner{
		Name:        r.Name,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		Address:     r.Address,
		Email:       r.Email,
		Password:    r.Password,
	}
}
