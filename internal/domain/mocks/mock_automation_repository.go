package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockAutomationRepository is a mock of AutomationRepository interface
type MockAutomationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAutomationRepositoryMockRecorder
}

// MockAutomationRepositoryMockRecorder is the mock recorder for MockAutomationRepository
type MockAutomationRepositoryMockRecorder struct {
	mock *MockAutomationRepository
}

// NewMockAutomationRepository creates a new mock instance
func NewMockAutomationRepository(ctrl *gomock.Controller) *MockAutomationRepository {
	mock := &MockAutomationRepository{ctrl: ctrl}
	mock.recorder = &MockAutomationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockAutomationRepository) EXPECT() *MockAutomationRepositoryMockRecorder {
	return m.recorder
}

// CreateRule mocks base method
func (m *MockAutomationRepository) CreateRule(ctx context.Context, rule *domain.AutomationRule) error {
	ret := m.ctrl.Call(m, "CreateRule", ctx, rule)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateRule indicates an expected call of CreateRule
func (mr *MockAutomationRepositoryMockRecorder) CreateRule(ctx, rule interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRule", reflect.TypeOf((*MockAutomationRepository)(nil).CreateRule), ctx, rule)
}

// GetRules mocks base method
func (m *MockAutomationRepository) GetRules(ctx context.Context, tenantID string) ([]*domain.AutomationRule, error) {
	ret := m.ctrl.Call(m, "GetRules", ctx, tenantID)
	ret0, _ := ret[0].([]*domain.AutomationRule)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRules indicates an expected call of GetRules
func (mr *MockAutomationRepositoryMockRecorder) GetRules(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRules", reflect.TypeOf((*MockAutomationRepository)(nil).GetRules), ctx, tenantID)
}

// GetActiveRulesByTrigger mocks base method
func (m *MockAutomationRepository) GetActiveRulesByTrigger(ctx context.Context, tenantID string, trigger domain.AutomationTrigger) ([]*domain.AutomationRule, error) {
	ret := m.ctrl.Call(m, "GetActiveRulesByTrigger", ctx, tenantID, trigger)
	ret0, _ := ret[0].([]*domain.AutomationRule)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActiveRulesByTrigger indicates an expected call of GetActiveRulesByTrigger
func (mr *MockAutomationRepositoryMockRecorder) GetActiveRulesByTrigger(ctx, tenantID, trigger interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActiveRulesByTrigger", reflect.TypeOf((*MockAutomationRepository)(nil).GetActiveRulesByTrigger), ctx, tenantID, trigger)
}

// SetRuleActive mocks base method
func (m *MockAutomationRepository) SetRuleActive(ctx context.Context, tenantID, id string, active bool) error {
	ret := m.ctrl.Call(m, "SetRuleActive", ctx, tenantID, id, active)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetRuleActive indicates an expected call of SetRuleActive
func (mr *MockAutomationRepositoryMockRecorder) SetRuleActive(ctx, tenantID, id, active interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetRuleActive", reflect.TypeOf((*MockAutomationRepository)(nil).SetRuleActive), ctx, tenantID, id, active)
}

// DeleteRule mocks base method
func (m *MockAutomationRepository) DeleteRule(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "DeleteRule", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteRule indicates an expected call of DeleteRule
func (mr *MockAutomationRepositoryMockRecorder) DeleteRule(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRule", reflect.TypeOf((*MockAutomationRepository)(nil).DeleteRule), ctx, tenantID, id)
}
