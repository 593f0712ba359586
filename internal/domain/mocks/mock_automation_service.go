package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockAutomationService is a mock of AutomationService interface
type MockAutomationService struct {
	ctrl     *gomock.Controller
	recorder *MockAutomationServiceMockRecorder
}

// MockAutomationServiceMockRecorder is the mock recorder for MockAutomationService
type MockAutomationServiceMockRecorder struct {
	mock *MockAutomationService
}

// NewMockAutomationService creates a new mock instance
func NewMockAutomationService(ctrl *gomock.Controller) *MockAutomationService {
	mock := &MockAutomationService{ctrl: ctrl}
	mock.recorder = &MockAutomationServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockAutomationService) EXPECT() *MockAutomationServiceMockRecorder {
	return m.recorder
}

// CreateRule mocks base method
func (m *MockAutomationService) CreateRule(ctx context.Context, tenantID string, req *domain.CreateAutomationRuleRequest) (*domain.AutomationRule, error) {
	ret := m.ctrl.Call(m, "CreateRule", ctx, tenantID, req)
	ret0, _ := ret[0].(*domain.AutomationRule)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateRule indicates an expected call of CreateRule
func (mr *MockAutomationServiceMockRecorder) CreateRule(ctx, tenantID, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRule", reflect.TypeOf((*MockAutomationService)(nil).CreateRule), ctx, tenantID, req)
}

// GetRules mocks base method
func (m *MockAutomationService) GetRules(ctx context.Context, tenantID string) ([]*domain.AutomationRule, error) {
	ret := m.ctrl.Call(m, "GetRules", ctx, tenantID)
	ret0, _ := ret[0].([]*domain.AutomationRule)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRules indicates an expected call of GetRules
func (mr *MockAutomationServiceMockRecorder) GetRules(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRules", reflect.TypeOf((*MockAutomationService)(nil).GetRules), ctx, tenantID)
}

// SetRuleActive mocks base method
func (m *MockAutomationService) SetRuleActive(ctx context.Context, tenantID, id string, active bool) error {
	ret := m.ctrl.Call(m, "SetRuleActive", ctx, tenantID, id, active)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetRuleActive indicates an expected call of SetRuleActive
func (mr *MockAutomationServiceMockRecorder) SetRuleActive(ctx, tenantID, id, active interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetRuleActive", reflect.TypeOf((*MockAutomationService)(nil).SetRuleActive), ctx, tenantID, id, active)
}

// DeleteRule mocks base method
func (m *MockAutomationService) DeleteRule(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "DeleteRule", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteRule indicates an expected call of DeleteRule
func (mr *MockAutomationServiceMockRecorder) DeleteRule(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRule", reflect.TypeOf((*MockAutomationService)(nil).DeleteRule), ctx, tenantID, id)
}

// HandleEvent mocks base method
func (m *MockAutomationService) HandleEvent(ctx context.Context, event *domain.AutomationEvent) error {
	ret := m.ctrl.Call(m, "HandleEvent", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// HandleEvent indicates an expected call of HandleEvent
func (mr *MockAutomationServiceMockRecorder) HandleEvent(ctx, event interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HandleEvent", reflect.TypeOf((*MockAutomationService)(nil).HandleEvent), ctx, event)
}
