package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockSuppressionRepository is a mock of SuppressionRepository interface
type MockSuppressionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockSuppressionRepositoryMockRecorder
}

// MockSuppressionRepositoryMockRecorder is the mock recorder for MockSuppressionRepository
type MockSuppressionRepositoryMockRecorder struct {
	mock *MockSuppressionRepository
}

// NewMockSuppressionRepository creates a new mock instance
func NewMockSuppressionRepository(ctrl *gomock.Controller) *MockSuppressionRepository {
	mock := &MockSuppressionRepository{ctrl: ctrl}
	mock.recorder = &MockSuppressionRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockSuppressionRepository) EXPECT() *MockSuppressionRepositoryMockRecorder {
	return m.recorder
}

// CreateEntry mocks base method
func (m *MockSuppressionRepository) CreateEntry(ctx context.Context, entry *domain.SuppressionEntry) error {
	ret := m.ctrl.Call(m, "CreateEntry", ctx, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateEntry indicates an expected call of CreateEntry
func (mr *MockSuppressionRepositoryMockRecorder) CreateEntry(ctx, entry interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateEntry", reflect.TypeOf((*MockSuppressionRepository)(nil).CreateEntry), ctx, entry)
}

// GetEntries mocks base method
func (m *MockSuppressionRepository) GetEntries(ctx context.Context, tenantID string) ([]*domain.SuppressionEntry, error) {
	ret := m.ctrl.Call(m, "GetEntries", ctx, tenantID)
	ret0, _ := ret[0].([]*domain.SuppressionEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetEntries indicates an expected call of GetEntries
func (mr *MockSuppressionRepositoryMockRecorder) GetEntries(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetEntries", reflect.TypeOf((*MockSuppressionRepository)(nil).GetEntries), ctx, tenantID)
}

// IsSuppressed mocks base method
func (m *MockSuppressionRepository) IsSuppressed(ctx context.Context, tenantID, email string) (bool, error) {
	ret := m.ctrl.Call(m, "IsSuppressed", ctx, tenantID, email)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsSuppressed indicates an expected call of IsSuppressed
func (mr *MockSuppressionRepositoryMockRecorder) IsSuppressed(ctx, tenantID, email interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsSuppressed", reflect.TypeOf((*MockSuppressionRepository)(nil).IsSuppressed), ctx, tenantID, email)
}
