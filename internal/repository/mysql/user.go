package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/internal/repository/mysql/model"
)

type userRepository struct {
	DB *gorm.DB
}

var (
	_ domain.UserRepository = (*userRepository)(nil)
	_ domain.PrincipalStore = (*userRepository)(nil)
)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).Take(&user, "id = ?", id).Error; err != nil {
		return domain.User{}, translate(err, "get user")
	}

	return user.ToDomain(), nil
}

func (m *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).Take(&user, "email = ?", email).Error; err != nil {
		return domain.User{}, translate(err, "get user by email")
	}

	return user.ToDomain(), nil
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	result := m.DB.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return translate(result.Error, "insert user")
	}

	u.CreatedAt = userModel.CreatedAt
	u.UpdatedAt = userModel.UpdatedAt

	return nil
}

func (m *userRepository) Exists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, translate(err, "user exists")
	}
	return n > 0, nil
}
