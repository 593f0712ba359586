package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockListService is a mock of ListService interface
type MockListService struct {
	ctrl     *gomock.Controller
	recorder *MockListServiceMockRecorder
}

// MockListServiceMockRecorder is the mock recorder for MockListService
type MockListServiceMockRecorder struct {
	mock *MockListService
}

// NewMockListService creates a new mock instance
func NewMockListService(ctrl *gomock.Controller) *MockListService {
	mock := &MockListService{ctrl: ctrl}
	mock.recorder = &MockListServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockListService) EXPECT() *MockListServiceMockRecorder {
	return m.recorder
}

// CreateList mocks base method
func (m *MockListService) CreateList(ctx context.Context, tenantID string, req *domain.CreateListRequest) (*domain.List, error) {
	ret := m.ctrl.Call(m, "CreateList", ctx, tenantID, req)
	ret0, _ := ret[0].(*domain.List)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateList indicates an expected call of CreateList
func (mr *MockListServiceMockRecorder) CreateList(ctx, tenantID, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateList", reflect.TypeOf((*MockListService)(nil).CreateList), ctx, tenantID, req)
}

// GetListByID mocks base method
func (m *MockListService) GetListByID(ctx context.Context, tenantID, id string) (*domain.List, error) {
	ret := m.ctrl.Call(m, "GetListByID", ctx, tenantID, id)
	ret0, _ := ret[0].(*domain.List)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetListByID indicates an expected call of GetListByID
func (mr *MockListServiceMockRecorder) GetListByID(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetListByID", reflect.TypeOf((*MockListService)(nil).GetListByID), ctx, tenantID, id)
}

// GetLists mocks base method
func (m *MockListService) GetLists(ctx context.Context, tenantID string) ([]*domain.List, error) {
	ret := m.ctrl.Call(m, "GetLists", ctx, tenantID)
	ret0, _ := ret[0].([]*domain.List)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLists indicates an expected call of GetLists
func (mr *MockListServiceMockRecorder) GetLists(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLists", reflect.TypeOf((*MockListService)(nil).GetLists), ctx, tenantID)
}

// UpdateList mocks base method
func (m *MockListService) UpdateList(ctx context.Context, tenantID string, req *domain.UpdateListRequest) (*domain.List, error) {
	ret := m.ctrl.Call(m, "UpdateList", ctx, tenantID, req)
	ret0, _ := ret[0].(*domain.List)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateList indicates an expected call of UpdateList
func (mr *MockListServiceMockRecorder) UpdateList(ctx, tenantID, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateList", reflect.TypeOf((*MockListService)(nil).UpdateList), ctx, tenantID, req)
}

// DeleteList mocks base method
func (m *MockListService) DeleteList(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "DeleteList", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteList indicates an expected call of DeleteList
func (mr *MockListServiceMockRecorder) DeleteList(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteList", reflect.TypeOf((*MockListService)(nil).DeleteList), ctx, tenantID, id)
}
