package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/food-reels/domain"
)

type MembershipStore struct {
	mock.Mock
}

func (m *MembershipStore) Toggle(ctx context.Context, e domain.Edge) (domain.ToggleResult, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(domain.ToggleResult), args.Error(1)
}

func (m *MembershipStore) Reconcile(ctx context.Context, foodID string) ([]domain.ReconcileReport, error) {
	args := m.Called(ctx, foodID)
	reports, _ := args.Get(0).([]domain.ReconcileReport)
	return reports, args.Error(1)
}

type KeyLocker struct {
	mock.Mock
}

func (m *KeyLocker) Lock(ctx context.Context, key string) (func(), error) {
	args := m.Called(ctx, key)
	unlock, _ := args.Get(0).(func())
	return unlock, args.Error(1)
}

type ReconcileQueue struct {
	mock.Mock
}

func (m *ReconcileQueue) Send(foodID string) {
	m.Called(foodID)
}

type ToggleEngine struct {
	mock.Mock
}

func (m *ToggleEngine) Toggle(ctx context.Context, p domain.Principal, foodID string, kind domain.EdgeKind) (domain.ToggleResult, error) {
	args := m.Called(ctx, p, foodID, kind)
	return args.Get(0).(domain.ToggleResult), args.Error(1)
}

type Reconciler struct {
	mock.Mock
}

func (m *Reconciler) ReconcileFood(ctx context.Context, foodID string) ([]domain.ReconcileReport, error) {
	args := m.Called(ctx, foodID)
	reports, _ := args.Get(0).([]domain.ReconcileReport)
	return reports, args.Error(1)
}

func (m *Reconciler) ReconcileAll(ctx context.Context, batch int64) (int, error) {
	args := m.Called(ctx, batch)
	return args.Int(0), args.Error(1)
}
