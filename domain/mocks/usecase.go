package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/food-reels/domain"
)

type FoodUsecase struct {
	mock.Mock
}

func (m *FoodUsecase) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Food, string, error) {
	args := m.Called(ctx, cursor, num)
	foods, _ := args.Get(0).([]domain.Food)
	return foods, args.String(1), args.Error(2)
}

func (m *FoodUsecase) Like(ctx context.Context, p domain.Principal, foodID string) (domain.ToggleResult, error) {
	args := m.Called(ctx, p, foodID)
	return args.Get(0).(domain.ToggleResult), args.Error(1)
}

func (m *FoodUsecase) Save(ctx context.Context, p domain.Principal, foodID string) (domain.ToggleResult, error) {
	args := m.Called(ctx, p, foodID)
	return args.Get(0).(domain.ToggleResult), args.Error(1)
}

func (m *FoodUsecase) FetchSaved(ctx context.Context, p domain.Principal) ([]domain.SavedFood, error) {
	args := m.Called(ctx, p)
	saved, _ := args.Get(0).([]domain.SavedFood)
	return saved, args.Error(1)
}

func (m *FoodUsecase) GetPartner(ctx context.Context, id string) (domain.FoodPartner, []domain.Food, error) {
	args := m.Called(ctx, id)
	foods, _ := args.Get(1).([]domain.Food)
	return args.Get(0).(domain.FoodPartner), foods, args.Error(2)
}

func (m *FoodUsecase) Create(ctx context.Context, p domain.Principal, in domain.NewFood) (domain.Food, error) {
	args := m.Called(ctx, p, in)
	return args.Get(0).(domain.Food), args.Error(1)
}

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) RegisterUser(ctx context.Context, name, email, password string) (domain.User, string, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *AuthUsecase) LoginUser(ctx context.Context, email, password string) (domain.User, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *AuthUsecase) RegisterPartner(ctx context.Context, p *domain.FoodPartner) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *AuthUsecase) LoginPartner(ctx context.Context, email, password string) (domain.FoodPartner, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.FoodPartner), args.String(1), args.Error(2)
}

func (m *AuthUsecase) Resolve(ctx context.Context, kind domain.PrincipalKind, token string) (domain.Principal, error) {
	args := m.Called(ctx, kind, token)
	return args.Get(0).(domain.Principal), args.Error(1)
}

func (m *AuthUsecase) Me(ctx context.Context, p domain.Principal) (domain.User, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *AuthUsecase) GetUser(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type TokenIssuer struct {
	mock.Mock
}

func (m *TokenIssuer) Issue(p domain.Principal) (string, error) {
	args := m.Called(p)
	return args.String(0), args.Error(1)
}

func (m *TokenIssuer) Verify(token string) (domain.Principal, error) {
	args := m.Called(token)
	return args.Get(0).(domain.Principal), args.Error(1)
}
