package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
	"github.com/sablemoor/RitualBot_Go/internal/ritual"
)

type MockRitualService struct {
	mock.Mock
}

func (m *MockRitualService) PlanFromItems(ctx context.Context, req ritual.PlanRequest) (*domain.RitualPlan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RitualPlan), args.Error(1)
}

func (m *MockRitualService) PlanFromImage(ctx context.Context, req ritual.ScanRequest) (*ritual.ScanResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ritual.ScanResult), args.Error(1)
}

func (m *MockRitualService) ResolveImage(ctx context.Context, imageBase64 string) ([]domain.CandidateItem, error) {
	args := m.Called(ctx, imageBase64)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateItem), args.Error(1)
}

func (m *MockRitualService) ResolveText(ctx context.Context, text string) ([]domain.CandidateItem, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateItem), args.Error(1)
}

type MockPrefsService struct {
	mock.Mock
}

func (m *MockPrefsService) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preferences), args.Error(1)
}

func (m *MockPrefsService) Update(ctx context.Context, p domain.Preferences) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
