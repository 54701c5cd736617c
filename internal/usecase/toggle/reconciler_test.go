package toggle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/domain/mocks"
	"github.com/Guyuepp/food-reels/internal/metrics"
	"github.com/Guyuepp/food-reels/internal/usecase/toggle"
)

func repairedLike(foodID string) []domain.ReconcileReport {
	return []domain.ReconcileReport{
		{FoodID: foodID, Kind: domain.EdgeLike, Stored: 3, Actual: 2, Repaired: true},
		{FoodID: foodID, Kind: domain.EdgeSave, Stored: 1, Actual: 1},
	}
}

func cleanFood(foodID string) []domain.ReconcileReport {
	return []domain.ReconcileReport{
		{FoodID: foodID, Kind: domain.EdgeLike},
		{FoodID: foodID, Kind: domain.EdgeSave},
	}
}

func TestReconcileFoodCountsRepairs(t *testing.T) {
	store := new(mocks.MembershipStore)
	store.On("Reconcile", mock.Anything, "f-1").Return(repairedLike("f-1"), nil).Once()
	before := testutil.ToFloat64(metrics.ReconcileRepairsTotal.WithLabelValues("like"))

	reports, err := toggle.NewReconciler(store, nil).ReconcileFood(context.Background(), "f-1")

	require.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ReconcileRepairsTotal.WithLabelValues("like")))
}

func TestReconcileFoodErrors(t *testing.T) {
	store := new(mocks.MembershipStore)
	store.On("Reconcile", mock.Anything, "missing").Return(nil, domain.ErrNotFound).Once()
	r := toggle.NewReconciler(store, nil)

	_, err := r.ReconcileFood(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.ReconcileFood(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReconcileAllWalksBatches(t *testing.T) {
	store := new(mocks.MembershipStore)
	ids := new(mocks.FoodDBRepository)

	ids.On("FetchIDs", mock.Anything, "", int64(2)).Return([]string{"a", "b"}, nil).Once()
	ids.On("FetchIDs", mock.Anything, "b", int64(2)).Return([]string{"c"}, nil).Once()
	store.On("Reconcile", mock.Anything, "a").Return(repairedLike("a"), nil).Once()
	store.On("Reconcile", mock.Anything, "b").Return(nil, domain.ErrNotFound).Once()
	store.On("Reconcile", mock.Anything, "c").Return(cleanFood("c"), nil).Once()

	repaired, err := toggle.NewReconciler(store, ids).ReconcileAll(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 1, repaired)
	ids.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestReconcileAllStopsOnStorageError(t *testing.T) {
	store := new(mocks.MembershipStore)
	ids := new(mocks.FoodDBRepository)

	ids.On("FetchIDs", mock.Anything, "", int64(10)).Return([]string{"a", "b"}, nil).Once()
	store.On("Reconcile", mock.Anything, "a").Return(nil, domain.ErrStorage).Once()

	_, err := toggle.NewReconciler(store, ids).ReconcileAll(context.Background(), 10)

	assert.ErrorIs(t, err, domain.ErrStorage)
	store.AssertNotCalled(t, "Reconcile", mock.Anything, "b")
}

func TestReconcileAllRejectsBadBatch(t *testing.T) {
	_, err := toggle.NewReconciler(new(mocks.MembershipStore), new(mocks.FoodDBRepository)).ReconcileAll(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestReconcileAllHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := toggle.NewReconciler(new(mocks.MembershipStore), new(mocks.FoodDBRepository)).ReconcileAll(ctx, 5)
	assert.True(t, errors.Is(err, context.Canceled))
}
