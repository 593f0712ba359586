package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockEngagementRepository is a mock of EngagementRepository interface
type MockEngagementRepository struct {
	ctrl     *gomock.Controller
	recorder *MockEngagementRepositoryMockRecorder
}

// MockEngagementRepositoryMockRecorder is the mock recorder for MockEngagementRepository
type MockEngagementRepositoryMockRecorder struct {
	mock *MockEngagementRepository
}

// NewMockEngagementRepository creates a new mock instance
func NewMockEngagementRepository(ctrl *gomock.Controller) *MockEngagementRepository {
	mock := &MockEngagementRepository{ctrl: ctrl}
	mock.recorder = &MockEngagementRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockEngagementRepository) EXPECT() *MockEngagementRepositoryMockRecorder {
	return m.recorder
}

// GetClicks mocks base method
func (m *MockEngagementRepository) GetClicks(ctx context.Context, tenantID, campaignID string) ([]*domain.LinkClickEvent, error) {
	ret := m.ctrl.Call(m, "GetClicks", ctx, tenantID, campaignID)
	ret0, _ := ret[0].([]*domain.LinkClickEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetClicks indicates an expected call of GetClicks
func (mr *MockEngagementRepositoryMockRecorder) GetClicks(ctx, tenantID, campaignID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetClicks", reflect.TypeOf((*MockEngagementRepository)(nil).GetClicks), ctx, tenantID, campaignID)
}

// GetViews mocks base method
func (m *MockEngagementRepository) GetViews(ctx context.Context, tenantID, campaignID string) ([]*domain.WebViewEvent, error) {
	ret := m.ctrl.Call(m, "GetViews", ctx, tenantID, campaignID)
	ret0, _ := ret[0].([]*domain.WebViewEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetViews indicates an expected call of GetViews
func (mr *MockEngagementRepositoryMockRecorder) GetViews(ctx, tenantID, campaignID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetViews", reflect.TypeOf((*MockEngagementRepository)(nil).GetViews), ctx, tenantID, campaignID)
}
