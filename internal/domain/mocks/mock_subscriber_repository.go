package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockSubscriberRepository is a mock of SubscriberRepository interface
type MockSubscriberRepository struct {
	ctrl     *gomock.Controller
	recorder *MockSubscriberRepositoryMockRecorder
}

// MockSubscriberRepositoryMockRecorder is the mock recorder for MockSubscriberRepository
type MockSubscriberRepositoryMockRecorder struct {
	mock *MockSubscriberRepository
}

// NewMockSubscriberRepository creates a new mock instance
func NewMockSubscriberRepository(ctrl *gomock.Controller) *MockSubscriberRepository {
	mock := &MockSubscriberRepository{ctrl: ctrl}
	mock.recorder = &MockSubscriberRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockSubscriberRepository) EXPECT() *MockSubscriberRepositoryMockRecorder {
	return m.recorder
}

// CreateSubscriber mocks base method
func (m *MockSubscriberRepository) CreateSubscriber(ctx context.Context, subscriber *domain.Subscriber) error {
	ret := m.ctrl.Call(m, "CreateSubscriber", ctx, subscriber)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateSubscriber indicates an expected call of CreateSubscriber
func (mr *MockSubscriberRepositoryMockRecorder) CreateSubscriber(ctx, subscriber interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSubscriber", reflect.TypeOf((*MockSubscriberRepository)(nil).CreateSubscriber), ctx, subscriber)
}

// GetSubscriberByID mocks base method
func (m *MockSubscriberRepository) GetSubscriberByID(ctx context.Context, tenantID, id string) (*domain.Subscriber, error) {
	ret := m.ctrl.Call(m, "GetSubscriberByID", ctx, tenantID, id)
	ret0, _ := ret[0].(*domain.Subscriber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSubscriberByID indicates an expected call of GetSubscriberByID
func (mr *MockSubscriberRepositoryMockRecorder) GetSubscriberByID(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSubscriberByID", reflect.TypeOf((*MockSubscriberRepository)(nil).GetSubscriberByID), ctx, tenantID, id)
}

// GetSubscriberByEmail mocks base method
func (m *MockSubscriberRepository) GetSubscriberByEmail(ctx context.Context, tenantID, email string) (*domain.Subscriber, error) {
	ret := m.ctrl.Call(m, "GetSubscriberByEmail", ctx, tenantID, email)
	ret0, _ := ret[0].(*domain.Subscriber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSubscriberByEmail indicates an expected call of GetSubscriberByEmail
func (mr *MockSubscriberRepositoryMockRecorder) GetSubscriberByEmail(ctx, tenantID, email interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSubscriberByEmail", reflect.TypeOf((*MockSubscriberRepository)(nil).GetSubscriberByEmail), ctx, tenantID, email)
}

// GetSubscribers mocks base method
func (m *MockSubscriberRepository) GetSubscribers(ctx context.Context, tenantID, listID string) ([]*domain.Subscriber, error) {
	ret := m.ctrl.Call(m, "GetSubscribers", ctx, tenantID, listID)
	ret0, _ := ret[0].([]*domain.Subscriber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSubscribers indicates an expected call of GetSubscribers
func (mr *MockSubscriberRepositoryMockRecorder) GetSubscribers(ctx, tenantID, listID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSubscribers", reflect.TypeOf((*MockSubscriberRepository)(nil).GetSubscribers), ctx, tenantID, listID)
}

// UpdateSubscriber mocks base method
func (m *MockSubscriberRepository) UpdateSubscriber(ctx context.Context, subscriber *domain.Subscriber) error {
	ret := m.ctrl.Call(m, "UpdateSubscriber", ctx, subscriber)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateSubscriber indicates an expected call of UpdateSubscriber
func (mr *MockSubscriberRepositoryMockRecorder) UpdateSubscriber(ctx, subscriber interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateSubscriber", reflect.TypeOf((*MockSubscriberRepository)(nil).UpdateSubscriber), ctx, subscriber)
}

// UpdateSubscriberStatus mocks base method
func (m *MockSubscriberRepository) UpdateSubscriberStatus(ctx context.Context, tenantID, id string, status domain.SubscriberStatus) error {
	ret := m.ctrl.Call(m, "UpdateSubscriberStatus", ctx, tenantID, id, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateSubscriberStatus indicates an expected call of UpdateSubscriberStatus
func (mr *MockSubscriberRepositoryMockRecorder) UpdateSubscriberStatus(ctx, tenantID, id, status interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateSubscriberStatus", reflect.TypeOf((*MockSubscriberRepository)(nil).UpdateSubscriberStatus), ctx, tenantID, id, status)
}

// ConfirmByToken mocks base method
func (m *MockSubscriberRepository) ConfirmByToken(ctx context.Context, token string) (*domain.Subscriber, error) {
	ret := m.ctrl.Call(m, "ConfirmByToken", ctx, token)
	ret0, _ := ret[0].(*domain.Subscriber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ConfirmByToken indicates an expected call of ConfirmByToken
func (mr *MockSubscriberRepositoryMockRecorder) ConfirmByToken(ctx, token interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConfirmByToken", reflect.TypeOf((*MockSubscriberRepository)(nil).ConfirmByToken), ctx, token)
}

// DeleteSubscriber mocks base method
func (m *MockSubscriberRepository) DeleteSubscriber(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "DeleteSubscriber", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteSubscriber indicates an expected call of DeleteSubscriber
func (mr *MockSubscriberRepositoryMockRecorder) DeleteSubscriber(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteSubscriber", reflect.TypeOf((*MockSubscriberRepository)(nil).DeleteSubscriber), ctx, tenantID, id)
}

// AddToLists mocks base method
func (m *MockSubscriberRepository) AddToLists(ctx context.Context, tenantID, subscriberID string, listIDs []string) error {
	ret := m.ctrl.Call(m, "AddToLists", ctx, tenantID, subscriberID, listIDs)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddToLists indicates an expected call of AddToLists
func (mr *MockSubscriberRepositoryMockRecorder) AddToLists(ctx, tenantID, subscriberID, listIDs interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddToLists", reflect.TypeOf((*MockSubscriberRepository)(nil).AddToLists), ctx, tenantID, subscriberID, listIDs)
}

// RemoveFromList mocks base method
func (m *MockSubscriberRepository) RemoveFromList(ctx context.Context, tenantID, subscriberID, listID string) error {
	ret := m.ctrl.Call(m, "RemoveFromList", ctx, tenantID, subscriberID, listID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveFromList indicates an expected call of RemoveFromList
func (mr *MockSubscriberRepositoryMockRecorder) RemoveFromList(ctx, tenantID, subscriberID, listID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveFromList", reflect.TypeOf((*MockSubscriberRepository)(nil).RemoveFromList), ctx, tenantID, subscriberID, listID)
}

// GetListIDs mocks base method
func (m *MockSubscriberRepository) GetListIDs(ctx context.Context, tenantID, subscriberID string) ([]string, error) {
	ret := m.ctrl.Call(m, "GetListIDs", ctx, tenantID, subscriberID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetListIDs indicates an expected call of GetListIDs
func (mr *MockSubscriberRepositoryMockRecorder) GetListIDs(ctx, tenantID, subscriberID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetListIDs", reflect.TypeOf((*MockSubscriberRepository)(nil).GetListIDs), ctx, tenantID, subscriberID)
}
