package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockListRepository is a mock of ListRepository interface
type MockListRepository struct {
	ctrl     *gomock.Controller
	recorder *MockListRepositoryMockRecorder
}

// MockListRepositoryMockRecorder is the mock recorder for MockListRepository
type MockListRepositoryMockRecorder struct {
	mock *MockListRepository
}

// NewMockListRepository creates a new mock instance
func NewMockListRepository(ctrl *gomock.Controller) *MockListRepository {
	mock := &MockListRepository{ctrl: ctrl}
	mock.recorder = &MockListRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockListRepository) EXPECT() *MockListRepositoryMockRecorder {
	return m.recorder
}

// CreateList mocks base method
func (m *MockListRepository) CreateList(ctx context.Context, list *domain.List) error {
	ret := m.ctrl.Call(m, "CreateList", ctx, list)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateList indicates an expected call of CreateList
func (mr *MockListRepositoryMockRecorder) CreateList(ctx, list interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateList", reflect.TypeOf((*MockListRepository)(nil).CreateList), ctx, list)
}

// GetListByID mocks base method
func (m *MockListRepository) GetListByID(ctx context.Context, tenantID, id string) (*domain.List, error) {
	ret := m.ctrl.Call(m, "GetListByID", ctx, tenantID, id)
	ret0, _ := ret[0].(*domain.List)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetListByID indicates an expected call of GetListByID
func (mr *MockListRepositoryMockRecorder) GetListByID(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetListByID", reflect.TypeOf((*MockListRepository)(nil).GetListByID), ctx, tenantID, id)
}

// GetLists mocks base method
func (m *MockListRepository) GetLists(ctx context.Context, tenantID string) ([]*domain.List, error) {
	ret := m.ctrl.Call(m, "GetLists", ctx, tenantID)
	ret0, _ := ret[0].([]*domain.List)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLists indicates an expected call of GetLists
func (mr *MockListRepositoryMockRecorder) GetLists(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLists", reflect.TypeOf((*MockListRepository)(nil).GetLists), ctx, tenantID)
}

// UpdateList mocks base method
func (m *MockListRepository) UpdateList(ctx context.Context, list *domain.List) error {
	ret := m.ctrl.Call(m, "UpdateList", ctx, list)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateList indicates an expected call of UpdateList
func (mr *MockListRepositoryMockRecorder) UpdateList(ctx, list interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateList", reflect.TypeOf((*MockListRepository)(nil).UpdateList), ctx, list)
}

// DeleteList mocks base method
func (m *MockListRepository) DeleteList(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "DeleteList", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteList indicates an expected call of DeleteList
func (mr *MockListRepositoryMockRecorder) DeleteList(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteList", reflect.TypeOf((*MockListRepository)(nil).DeleteList), ctx, tenantID, id)
}

// RefreshSubscriberCount mocks base method
func (m *MockListRepository) RefreshSubscriberCount(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "RefreshSubscriberCount", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// RefreshSubscriberCount indicates an expected call of RefreshSubscriberCount
func (mr *MockListRepositoryMockRecorder) RefreshSubscriberCount(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RefreshSubscriberCount", reflect.TypeOf((*MockListRepository)(nil).RefreshSubscriberCount), ctx, tenantID, id)
}
