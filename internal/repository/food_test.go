package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/domain/mocks"
	"github.com/Guyuepp/food-reels/internal/repository"
)

func TestFetchServesCachedFeed(t *testing.T) {
	db := new(mocks.FoodDBRepository)
	cache := new(mocks.FoodCache)
	partners := new(mocks.FoodPartnerRepository)

	cached := []domain.Food{{ID: "f-1"}, {ID: "f-2"}, {ID: "f-3"}}
	cache.On("GetFeedWithLogicalExpire", mock.Anything).Return(cached, false, nil).Once()

	repo := repository.NewFoodRepository(db, cache, partners)
	res, err := repo.Fetch(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Equal(t, cached[:2], res)

	db.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestFetchCacheMissLoadsFromDB(t *testing.T) {
	db := new(mocks.FoodDBRepository)
	cache := new(mocks.FoodCache)
	partners := new(mocks.FoodPartnerRepository)

	cache.On("GetFeedWithLogicalExpire", mock.Anything).Return(nil, false, domain.ErrCacheMiss).Once()
	cache.On("SetFeedWithLogicalExpire", mock.Anything, mock.Anything, repository.FeedCacheTTL).Return(nil).Maybe()
	db.On("Fetch", mock.Anything, "", int64(repository.PageMaxNum)).Return([]domain.Food{
		{ID: "f-1", Partner: domain.FoodPartner{ID: "p-1"}},
		{ID: "f-2", Partner: domain.FoodPartner{ID: "p-1"}},
	}, nil).Once()
	partners.On("GetByIDs", mock.Anything, []string{"p-1"}).Return([]domain.FoodPartner{
		{ID: "p-1", Name: "Noodle Bar", Password: "secret-hash"},
	}, nil).Once()

	repo := repository.NewFoodRepository(db, cache, partners)
	res, err := repo.Fetch(context.Background(), "", 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Noodle Bar", res[0].Partner.Name)
	assert.Empty(t, res[0].Partner.Password)

	db.AssertExpectations(t)
	partners.AssertExpectations(t)
}

func TestFetchWithCursorBypassesCache(t *testing.T) {
	db := new(mocks.FoodDBRepository)
	cache := new(mocks.FoodCache)
	partners := new(mocks.FoodPartnerRepository)

	db.On("Fetch", mock.Anything, "cursor", int64(5)).Return([]domain.Food{}, nil).Once()

	repo := repository.NewFoodRepository(db, cache, partners)
	res, err := repo.Fetch(context.Background(), "cursor", 5)
	require.NoError(t, err)
	assert.Empty(t, res)
	cache.AssertNotCalled(t, "GetFeedWithLogicalExpire", mock.Anything)
}

func TestFetchPropagatesDBError(t *testing.T) {
	db := new(mocks.FoodDBRepository)
	cache := new(mocks.FoodCache)
	partners := new(mocks.FoodPartnerRepository)

	cache.On("GetFeedWithLogicalExpire", mock.Anything).Return(nil, false, errors.New("redis down")).Once()
	db.On("Fetch", mock.Anything, "", int64(repository.PageMaxNum)).Return(nil, domain.ErrStorage).Once()

	repo := repository.NewFoodRepository(db, cache, partners)
	_, err := repo.Fetch(context.Background(), "", 10)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestStoreInvalidatesFeed(t *testing.T) {
	db := new(mocks.FoodDBRepository)
	cache := new(mocks.FoodCache)
	partners := new(mocks.FoodPartnerRepository)

	f := &domain.Food{ID: "f-9"}
	db.On("Store", mock.Anything, f).Return(nil).Once()
	cache.On("DeleteFeed", mock.Anything).Return(nil).Once()

	repo := repository.NewFoodRepository(db, cache, partners)
	require.NoError(t, repo.Store(context.Background(), f))

	db.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestNilCacheIsAllowed(t *testing.T) {
	db := new(mocks.FoodDBRepository)
	partners := new(mocks.FoodPartnerRepository)

	db.On("Fetch", mock.Anything, "", int64(10)).Return([]domain.Food{}, nil).Once()

	repo := repository.NewFoodRepository(db, nil, partners)
	_, err := repo.Fetch(context.Background(), "", 10)
	require.NoError(t, err)
	repo.InvalidateFeed(context.Background())
}
