package mysql_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/internal/repository"
	mysqlRepo "github.com/Guyuepp/food-reels/internal/repository/mysql"
)

func TestFoodFetchPaginatesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := mysqlRepo.NewFoodDBRepository(db)
	ctx := context.Background()

	partner := seedPartner(t, db)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	oldest := seedFood(t, db, partner.ID, base)
	middle := seedFood(t, db, partner.ID, base.Add(time.Minute))
	newest := seedFood(t, db, partner.ID, base.Add(2*time.Minute))

	page, err := repo.Fetch(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, newest.ID, page[0].ID)
	assert.Equal(t, middle.ID, page[1].ID)
	assert.Equal(t, partner.ID, page[0].Partner.ID)

	next, err := repo.Fetch(ctx, repository.EncodeCursor(page[1].CreatedAt, page[1].ID), 2)
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, oldest.ID, next[0].ID)
}

func TestFoodFetchKeepsRowsSharingTheBoundaryTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := mysqlRepo.NewFoodDBRepository(db)
	ctx := context.Background()

	partner := seedPartner(t, db)
	sameInstant := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		ids = append(ids, seedFood(t, db, partner.ID, sameInstant).ID)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))

	page, err := repo.Fetch(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[0], page[0].ID)
	assert.Equal(t, ids[1], page[1].ID)

	next, err := repo.Fetch(ctx, repository.EncodeCursor(page[1].CreatedAt, page[1].ID), 2)
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, ids[2], next[0].ID)
}

func TestFoodFetchBadCursor(t *testing.T) {
	db := setupTestDB(t)
	repo := mysqlRepo.NewFoodDBRepository(db)

	_, err := repo.Fetch(context.Background(), "!!!", 10)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestFoodStoreStartsCountersAtZero(t *testing.T) {
	db := setupTestDB(t)
	repo := mysqlRepo.NewFoodDBRepository(db)
	ctx := context.Background()
	partner := seedPartner(t, db)

	f := domain.Food{
		ID:          uuid.NewString(),
		Name:        "Tacos",
		Description: "Al pastor",
		Video:       "https://cdn.example.com/v.mp4",
		Partner:     domain.FoodPartner{ID: partner.ID},
		LikeCount:   99,
		SaveCount:   5,
	}
	require.NoError(t, repo.Store(ctx, &f))
	assert.False(t, f.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, got.LikeCount)
	assert.EqualValues(t, 0, got.SaveCount)
	assert.Equal(t, "Tacos", got.Name)
}

func TestFoodGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := mysqlRepo.NewFoodDBRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFoodFetchByPartnerAndSaved(t *testing.T) {
	db := setupTestDB(t)
	foods := mysqlRepo.NewFoodDBRepository(db)
	edges := mysqlRepo.NewMembershipRepository(db)
	ctx := context.Background()

	p1 := seedPartner(t, db)
	p2 := seedPartner(t, db)
	f1 := seedFood(t, db, p1.ID, time.Now().Add(-time.Hour))
	f2 := seedFood(t, db, p1.ID, time.Now())
	seedFood(t, db, p2.ID, time.Now())

	byPartner, err := foods.FetchByPartner(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, byPartner, 2)
	assert.Equal(t, f2.ID, byPartner[0].ID)

	u := seedUser(t, db)
	saved, err := foods.FetchSaved(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, saved)

	_, err = edges.Toggle(ctx, domain.Edge{UserID: u.ID, FoodID: f1.ID, Kind: domain.EdgeSave, CreatedAt: time.Now().Add(-time.Minute)})
	require.NoError(t, err)
	_, err = edges.Toggle(ctx, domain.Edge{UserID: u.ID, FoodID: f2.ID, Kind: domain.EdgeSave, CreatedAt: time.Now()})
	require.NoError(t, err)
	// likes are not saves
	_, err = edges.Toggle(ctx, domain.Edge{UserID: u.ID, FoodID: f1.ID, Kind: domain.EdgeLike})
	require.NoError(t, err)

	saved, err = foods.FetchSaved(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, f2.ID, saved[0].Food.ID)
	assert.Equal(t, f1.ID, saved[1].Food.ID)
	assert.EqualValues(t, 1, saved[1].Food.SaveCount)
	assert.EqualValues(t, 1, saved[1].Food.LikeCount)
}

func TestFoodFetchIDsWalksAll(t *testing.T) {
	db := setupTestDB(t)
	repo := mysqlRepo.NewFoodDBRepository(db)
	ctx := context.Background()
	partner := seedPartner(t, db)

	want := map[string]bool{}
	for range 5 {
		want[seedFood(t, db, partner.ID, time.Now()).ID] = true
	}

	got := map[string]bool{}
	cursor := ""
	for {
		ids, err := repo.FetchIDs(ctx, cursor, 2)
		require.NoError(t, err)
		if len(ids) == 0 {
			break
		}
		for _, id := range ids {
			got[id] = true
		}
		cursor = ids[len(ids)-1]
	}
	assert.Equal(t, want, got)
}
