package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockSuppressionService is a mock of SuppressionService interface
type MockSuppressionService struct {
	ctrl     *gomock.Controller
	recorder *MockSuppressionServiceMockRecorder
}

// MockSuppressionServiceMockRecorder is the mock recorder for MockSuppressionService
type MockSuppressionServiceMockRecorder struct {
	mock *MockSuppressionService
}

// NewMockSuppressionService creates a new mock instance
func NewMockSuppressionService(ctrl *gomock.Controller) *MockSuppressionService {
	mock := &MockSuppressionService{ctrl: ctrl}
	mock.recorder = &MockSuppressionServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockSuppressionService) EXPECT() *MockSuppressionServiceMockRecorder {
	return m.recorder
}

// AddEntry mocks base method
func (m *MockSuppressionService) AddEntry(ctx context.Context, tenantID string, req *domain.CreateSuppressionRequest) (*domain.SuppressionEntry, error) {
	ret := m.ctrl.Call(m, "AddEntry", ctx, tenantID, req)
	ret0, _ := ret[0].(*domain.SuppressionEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddEntry indicates an expected call of AddEntry
func (mr *MockSuppressionServiceMockRecorder) AddEntry(ctx, tenantID, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddEntry", reflect.TypeOf((*MockSuppressionService)(nil).AddEntry), ctx, tenantID, req)
}

// GetEntries mocks base method
func (m *MockSuppressionService) GetEntries(ctx context.Context, tenantID string) ([]*domain.SuppressionEntry, error) {
	ret := m.ctrl.Call(m, "GetEntries", ctx, tenantID)
	ret0, _ := ret[0].([]*domain.SuppressionEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetEntries indicates an expected call of GetEntries
func (mr *MockSuppressionServiceMockRecorder) GetEntries(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetEntries", reflect.TypeOf((*MockSuppressionService)(nil).GetEntries), ctx, tenantID)
}

// IsSuppressed mocks base method
func (m *MockSuppressionService) IsSuppressed(ctx context.Context, tenantID, email string) (bool, error) {
	ret := m.ctrl.Call(m, "IsSuppressed", ctx, tenantID, email)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsSuppressed indicates an expected call of IsSuppressed
func (mr *MockSuppressionServiceMockRecorder) IsSuppressed(ctx, tenantID, email interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsSuppressed", reflect.TypeOf((*MockSuppressionService)(nil).IsSuppressed), ctx, tenantID, email)
}
