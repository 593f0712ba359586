package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockSubscriberService is a mock of SubscriberService interface
type MockSubscriberService struct {
	ctrl     *gomock.Controller
	recorder *MockSubscriberServiceMockRecorder
}

// MockSubscriberServiceMockRecorder is the mock recorder for MockSubscriberService
type MockSubscriberServiceMockRecorder struct {
	mock *MockSubscriberService
}

// NewMockSubscriberService creates a new mock instance
func NewMockSubscriberService(ctrl *gomock.Controller) *MockSubscriberService {
	mock := &MockSubscriberService{ctrl: ctrl}
	mock.recorder = &MockSubscriberServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockSubscriberService) EXPECT() *MockSubscriberServiceMockRecorder {
	return m.recorder
}

// CreateSubscriber mocks base method
func (m *MockSubscriberService) CreateSubscriber(ctx context.Context, tenantID string, req *domain.CreateSubscriberRequest) (*domain.Subscriber, error) {
	ret := m.ctrl.Call(m, "CreateSubscriber", ctx, tenantID, req)
	ret0, _ := ret[0].(*domain.Subscriber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateSubscriber indicates an expected call of CreateSubscriber
func (mr *MockSubscriberServiceMockRecorder) CreateSubscriber(ctx, tenantID, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSubscriber", reflect.TypeOf((*MockSubscriberService)(nil).CreateSubscriber), ctx, tenantID, req)
}

// ImportSubscribers mocks base method
func (m *MockSubscriberService) ImportSubscribers(ctx context.Context, tenantID string, req *domain.ImportSubscribersRequest) (*domain.ImportSubscribersResult, error) {
	ret := m.ctrl.Call(m, "ImportSubscribers", ctx, tenantID, req)
	ret0, _ := ret[0].(*domain.ImportSubscribersResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ImportSubscribers indicates an expected call of ImportSubscribers
func (mr *MockSubscriberServiceMockRecorder) ImportSubscribers(ctx, tenantID, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ImportSubscribers", reflect.TypeOf((*MockSubscriberService)(nil).ImportSubscribers), ctx, tenantID, req)
}

// GetSubscriberByID mocks base method
func (m *MockSubscriberService) GetSubscriberByID(ctx context.Context, tenantID, id string) (*domain.Subscriber, error) {
	ret := m.ctrl.Call(m, "GetSubscriberByID", ctx, tenantID, id)
	ret0, _ := ret[0].(*domain.Subscriber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSubscriberByID indicates an expected call of GetSubscriberByID
func (mr *MockSubscriberServiceMockRecorder) GetSubscriberByID(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSubscriberByID", reflect.TypeOf((*MockSubscriberService)(nil).GetSubscriberByID), ctx, tenantID, id)
}

// GetSubscribers mocks base method
func (m *MockSubscriberService) GetSubscribers(ctx context.Context, tenantID, listID string) ([]*domain.Subscriber, error) {
	ret := m.ctrl.Call(m, "GetSubscribers", ctx, tenantID, listID)
	ret0, _ := ret[0].([]*domain.Subscriber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSubscribers indicates an expected call of GetSubscribers
func (mr *MockSubscriberServiceMockRecorder) GetSubscribers(ctx, tenantID, listID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSubscribers", reflect.TypeOf((*MockSubscriberService)(nil).GetSubscribers), ctx, tenantID, listID)
}

// UpdateSubscriber mocks base method
func (m *MockSubscriberService) UpdateSubscriber(ctx context.Context, tenantID string, req *domain.UpdateSubscriberRequest) (*domain.Subscriber, error) {
	ret := m.ctrl.Call(m, "UpdateSubscriber", ctx, tenantID, req)
	ret0, _ := ret[0].(*domain.Subscriber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateSubscriber indicates an expected call of UpdateSubscriber
func (mr *MockSubscriberServiceMockRecorder) UpdateSubscriber(ctx, tenantID, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateSubscriber", reflect.TypeOf((*MockSubscriberService)(nil).UpdateSubscriber), ctx, tenantID, req)
}

// AddToLists mocks base method
func (m *MockSubscriberService) AddToLists(ctx context.Context, tenantID, subscriberID string, listIDs []string) error {
	ret := m.ctrl.Call(m, "AddToLists", ctx, tenantID, subscriberID, listIDs)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddToLists indicates an expected call of AddToLists
func (mr *MockSubscriberServiceMockRecorder) AddToLists(ctx, tenantID, subscriberID, listIDs interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddToLists", reflect.TypeOf((*MockSubscriberService)(nil).AddToLists), ctx, tenantID, subscriberID, listIDs)
}

// RemoveFromList mocks base method
func (m *MockSubscriberService) RemoveFromList(ctx context.Context, tenantID, subscriberID, listID string) error {
	ret := m.ctrl.Call(m, "RemoveFromList", ctx, tenantID, subscriberID, listID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveFromList indicates an expected call of RemoveFromList
func (mr *MockSubscriberServiceMockRecorder) RemoveFromList(ctx, tenantID, subscriberID, listID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveFromList", reflect.TypeOf((*MockSubscriberService)(nil).RemoveFromList), ctx, tenantID, subscriberID, listID)
}

// ConfirmSubscriber mocks base method
func (m *MockSubscriberService) ConfirmSubscriber(ctx context.Context, token string) (*domain.Subscriber, error) {
	ret := m.ctrl.Call(m, "ConfirmSubscriber", ctx, token)
	ret0, _ := ret[0].(*domain.Subscriber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ConfirmSubscriber indicates an expected call of ConfirmSubscriber
func (mr *MockSubscriberServiceMockRecorder) ConfirmSubscriber(ctx, token interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConfirmSubscriber", reflect.TypeOf((*MockSubscriberService)(nil).ConfirmSubscriber), ctx, token)
}

// Unsubscribe mocks base method
func (m *MockSubscriberService) Unsubscribe(ctx context.Context, tenantID, subscriberID string) error {
	ret := m.ctrl.Call(m, "Unsubscribe", ctx, tenantID, subscriberID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Unsubscribe indicates an expected call of Unsubscribe
func (mr *MockSubscriberServiceMockRecorder) Unsubscribe(ctx, tenantID, subscriberID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unsubscribe", reflect.TypeOf((*MockSubscriberService)(nil).Unsubscribe), ctx, tenantID, subscriberID)
}

// DeleteSubscriber mocks base method
func (m *MockSubscriberService) DeleteSubscriber(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "DeleteSubscriber", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteSubscriber indicates an expected call of DeleteSubscriber
func (mr *MockSubscriberServiceMockRecorder) DeleteSubscriber(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteSubscriber", reflect.TypeOf((*MockSubscriberService)(nil).DeleteSubscriber), ctx, tenantID, id)
}
