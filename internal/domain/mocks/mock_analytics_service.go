package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockAnalyticsService is a mock of AnalyticsService interface
type MockAnalyticsService struct {
	ctrl     *gomock.Controller
	recorder *MockAnalyticsServiceMockRecorder
}

// MockAnalyticsServiceMockRecorder is the mock recorder for MockAnalyticsService
type MockAnalyticsServiceMockRecorder struct {
	mock *MockAnalyticsService
}

// NewMockAnalyticsService creates a new mock instance
func NewMockAnalyticsService(ctrl *gomock.Controller) *MockAnalyticsService {
	mock := &MockAnalyticsService{ctrl: ctrl}
	mock.recorder = &MockAnalyticsServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockAnalyticsService) EXPECT() *MockAnalyticsServiceMockRecorder {
	return m.recorder
}

// GetCampaignAnalytics mocks base method
func (m *MockAnalyticsService) GetCampaignAnalytics(ctx context.Context, tenantID, campaignID string) (*domain.CampaignAnalytics, error) {
	ret := m.ctrl.Call(m, "GetCampaignAnalytics", ctx, tenantID, campaignID)
	ret0, _ := ret[0].(*domain.CampaignAnalytics)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCampaignAnalytics indicates an expected call of GetCampaignAnalytics
func (mr *MockAnalyticsServiceMockRecorder) GetCampaignAnalytics(ctx, tenantID, campaignID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCampaignAnalytics", reflect.TypeOf((*MockAnalyticsService)(nil).GetCampaignAnalytics), ctx, tenantID, campaignID)
}

// RecomputeAnalytics mocks base method
func (m *MockAnalyticsService) RecomputeAnalytics(ctx context.Context, tenantID, campaignID string) (*domain.CampaignAnalytics, error) {
	ret := m.ctrl.Call(m, "RecomputeAnalytics", ctx, tenantID, campaignID)
	ret0, _ := ret[0].(*domain.CampaignAnalytics)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecomputeAnalytics indicates an expected call of RecomputeAnalytics
func (mr *MockAnalyticsServiceMockRecorder) RecomputeAnalytics(ctx, tenantID, campaignID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecomputeAnalytics", reflect.TypeOf((*MockAnalyticsService)(nil).RecomputeAnalytics), ctx, tenantID, campaignID)
}

// GetKPIs mocks base method
func (m *MockAnalyticsService) GetKPIs(ctx context.Context, tenantID string) ([]domain.KPI, error) {
	ret := m.ctrl.Call(m, "GetKPIs", ctx, tenantID)
	ret0, _ := ret[0].([]domain.KPI)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetKPIs indicates an expected call of GetKPIs
func (mr *MockAnalyticsServiceMockRecorder) GetKPIs(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetKPIs", reflect.TypeOf((*MockAnalyticsService)(nil).GetKPIs), ctx, tenantID)
}

// GetSpamRate mocks base method
func (m *MockAnalyticsService) GetSpamRate(ctx context.Context, tenantID string) (float64, error) {
	ret := m.ctrl.Call(m, "GetSpamRate", ctx, tenantID)
	ret0, _ := ret[0].(float64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSpamRate indicates an expected call of GetSpamRate
func (mr *MockAnalyticsServiceMockRecorder) GetSpamRate(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSpamRate", reflect.TypeOf((*MockAnalyticsService)(nil).GetSpamRate), ctx, tenantID)
}

// GetDomainPerformance mocks base method
func (m *MockAnalyticsService) GetDomainPerformance(ctx context.Context, tenantID string) ([]domain.DomainPerformance, error) {
	ret := m.ctrl.Call(m, "GetDomainPerformance", ctx, tenantID)
	ret0, _ := ret[0].([]domain.DomainPerformance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDomainPerformance indicates an expected call of GetDomainPerformance
func (mr *MockAnalyticsServiceMockRecorder) GetDomainPerformance(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDomainPerformance", reflect.TypeOf((*MockAnalyticsService)(nil).GetDomainPerformance), ctx, tenantID)
}

// GetComplianceChecklist mocks base method
func (m *MockAnalyticsService) GetComplianceChecklist(ctx context.Context, tenantID string) ([]domain.ComplianceItem, error) {
	ret := m.ctrl.Call(m, "GetComplianceChecklist", ctx, tenantID)
	ret0, _ := ret[0].([]domain.ComplianceItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetComplianceChecklist indicates an expected call of GetComplianceChecklist
func (mr *MockAnalyticsServiceMockRecorder) GetComplianceChecklist(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetComplianceChecklist", reflect.TypeOf((*MockAnalyticsService)(nil).GetComplianceChecklist), ctx, tenantID)
}
