// Package mocks holds testify mocks of the domain contracts.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/food-reels/domain"
)

type FoodDBRepository struct {
	mock.Mock
}

func (m *FoodDBRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Food, error) {
	args := m.Called(ctx, cursor, num)
	foods, _ := args.Get(0).([]domain.Food)
	return foods, args.Error(1)
}

func (m *FoodDBRepository) GetByID(ctx context.Context, id string) (domain.Food, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Food), args.Error(1)
}

func (m *FoodDBRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Food, error) {
	args := m.Called(ctx, ids)
	foods, _ := args.Get(0).([]domain.Food)
	return foods, args.Error(1)
}

func (m *FoodDBRepository) FetchByPartner(ctx context.Context, partnerID string) ([]domain.Food, error) {
	args := m.Called(ctx, partnerID)
	foods, _ := args.Get(0).([]domain.Food)
	return foods, args.Error(1)
}

func (m *FoodDBRepository) FetchSaved(ctx context.Context, userID string) ([]domain.SavedFood, error) {
	args := m.Called(ctx, userID)
	saved, _ := args.Get(0).([]domain.SavedFood)
	return saved, args.Error(1)
}

func (m *FoodDBRepository) Store(ctx context.Context, f *domain.Food) error {
	return m.Called(ctx, f).Error(0)
}

func (m *FoodDBRepository) FetchIDs(ctx context.Context, cursor string, limit int64) ([]string, error) {
	args := m.Called(ctx, cursor, limit)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

// FoodRepository mocks the coordinated repository.
type FoodRepository struct {
	FoodDBRepository
}

func (m *FoodRepository) InvalidateFeed(ctx context.Context) {
	m.Called(ctx)
}

type FoodCache struct {
	mock.Mock
}

func (m *FoodCache) GetFeedWithLogicalExpire(ctx context.Context) ([]domain.Food, bool, error) {
	args := m.Called(ctx)
	foods, _ := args.Get(0).([]domain.Food)
	return foods, args.Bool(1), args.Error(2)
}

func (m *FoodCache) SetFeedWithLogicalExpire(ctx context.Context, foods []domain.Food, ttl time.Duration) error {
	return m.Called(ctx, foods, ttl).Error(0)
}

func (m *FoodCache) DeleteFeed(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type FoodPartnerRepository struct {
	mock.Mock
}

func (m *FoodPartnerRepository) GetByID(ctx context.Context, id string) (domain.FoodPartner, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.FoodPartner), args.Error(1)
}

func (m *FoodPartnerRepository) GetByEmail(ctx context.Context, email string) (domain.FoodPartner, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.FoodPartner), args.Error(1)
}

func (m *FoodPartnerRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.FoodPartner, error) {
	args := m.Called(ctx, ids)
	partners, _ := args.Get(0).([]domain.FoodPartner)
	return partners, args.Error(1)
}

func (m *FoodPartnerRepository) Insert(ctx context.Context, p *domain.FoodPartner) error {
	return m.Called(ctx, p).Error(0)
}

func (m *FoodPartnerRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type BloomRepository struct {
	mock.Mock
}

func (m *BloomRepository) Add(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *BloomRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *BloomRepository) BulkAdd(ctx context.Context, ids []string) error {
	return m.Called(ctx, ids).Error(0)
}

type ContentStore struct {
	mock.Mock
}

func (m *ContentStore) Store(ctx context.Context, data []byte, name string) (string, error) {
	args := m.Called(ctx, data, name)
	return args.String(0), args.Error(1)
}
