package mocks

import (
	"context"
	"reflect"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockAnalyticsRepository is a mock of AnalyticsRepository interface
type MockAnalyticsRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAnalyticsRepositoryMockRecorder
}

// MockAnalyticsRepositoryMockRecorder is the mock recorder for MockAnalyticsRepository
type MockAnalyticsRepositoryMockRecorder struct {
	mock *MockAnalyticsRepository
}

// NewMockAnalyticsRepository creates a new mock instance
func NewMockAnalyticsRepository(ctrl *gomock.Controller) *MockAnalyticsRepository {
	mock := &MockAnalyticsRepository{ctrl: ctrl}
	mock.recorder = &MockAnalyticsRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockAnalyticsRepository) EXPECT() *MockAnalyticsRepositoryMockRecorder {
	return m.recorder
}

// GetCampaignAnalytics mocks base method
func (m *MockAnalyticsRepository) GetCampaignAnalytics(ctx context.Context, tenantID, campaignID string) (*domain.CampaignAnalytics, error) {
	ret := m.ctrl.Call(m, "GetCampaignAnalytics", ctx, tenantID, campaignID)
	ret0, _ := ret[0].(*domain.CampaignAnalytics)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCampaignAnalytics indicates an expected call of GetCampaignAnalytics
func (mr *MockAnalyticsRepositoryMockRecorder) GetCampaignAnalytics(ctx, tenantID, campaignID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCampaignAnalytics", reflect.TypeOf((*MockAnalyticsRepository)(nil).GetCampaignAnalytics), ctx, tenantID, campaignID)
}

// RecomputeAnalytics mocks base method
func (m *MockAnalyticsRepository) RecomputeAnalytics(ctx context.Context, tenantID, campaignID string) (*domain.CampaignAnalytics, error) {
	ret := m.ctrl.Call(m, "RecomputeAnalytics", ctx, tenantID, campaignID)
	ret0, _ := ret[0].(*domain.CampaignAnalytics)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecomputeAnalytics indicates an expected call of RecomputeAnalytics
func (mr *MockAnalyticsRepositoryMockRecorder) RecomputeAnalytics(ctx, tenantID, campaignID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecomputeAnalytics", reflect.TypeOf((*MockAnalyticsRepository)(nil).RecomputeAnalytics), ctx, tenantID, campaignID)
}

// GetRateWindow mocks base method
func (m *MockAnalyticsRepository) GetRateWindow(ctx context.Context, tenantID string, from, to time.Time) (*domain.RateWindow, error) {
	ret := m.ctrl.Call(m, "GetRateWindow", ctx, tenantID, from, to)
	ret0, _ := ret[0].(*domain.RateWindow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRateWindow indicates an expected call of GetRateWindow
func (mr *MockAnalyticsRepositoryMockRecorder) GetRateWindow(ctx, tenantID, from, to interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRateWindow", reflect.TypeOf((*MockAnalyticsRepository)(nil).GetRateWindow), ctx, tenantID, from, to)
}

// GetDomainPerformance mocks base method
func (m *MockAnalyticsRepository) GetDomainPerformance(ctx context.Context, tenantID string) ([]domain.DomainPerformance, error) {
	ret := m.ctrl.Call(m, "GetDomainPerformance", ctx, tenantID)
	ret0, _ := ret[0].([]domain.DomainPerformance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDomainPerformance indicates an expected call of GetDomainPerformance
func (mr *MockAnalyticsRepositoryMockRecorder) GetDomainPerformance(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDomainPerformance", reflect.TypeOf((*MockAnalyticsRepository)(nil).GetDomainPerformance), ctx, tenantID)
}

// CountConfirmedSubscribers mocks base method
func (m *MockAnalyticsRepository) CountConfirmedSubscribers(ctx context.Context, tenantID string) (int, int, error) {
	ret := m.ctrl.Call(m, "CountConfirmedSubscribers", ctx, tenantID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// CountConfirmedSubscribers indicates an expected call of CountConfirmedSubscribers
func (mr *MockAnalyticsRepositoryMockRecorder) CountConfirmedSubscribers(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountConfirmedSubscribers", reflect.TypeOf((*MockAnalyticsRepository)(nil).CountConfirmedSubscribers), ctx, tenantID)
}

// CountSuppressionEntries mocks base method
func (m *MockAnalyticsRepository) CountSuppressionEntries(ctx context.Context, tenantID string) (int, error) {
	ret := m.ctrl.Call(m, "CountSuppressionEntries", ctx, tenantID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountSuppressionEntries indicates an expected call of CountSuppressionEntries
func (mr *MockAnalyticsRepositoryMockRecorder) CountSuppressionEntries(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountSuppressionEntries", reflect.TypeOf((*MockAnalyticsRepository)(nil).CountSuppressionEntries), ctx, tenantID)
}
