package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockDeliveryRepository is a mock of DeliveryRepository interface
type MockDeliveryRepository struct {
	ctrl     *gomock.Controller
	recorder *MockDeliveryRepositoryMockRecorder
}

// MockDeliveryRepositoryMockRecorder is the mock recorder for MockDeliveryRepository
type MockDeliveryRepositoryMockRecorder struct {
	mock *MockDeliveryRepository
}

// NewMockDeliveryRepository creates a new mock instance
func NewMockDeliveryRepository(ctrl *gomock.Controller) *MockDeliveryRepository {
	mock := &MockDeliveryRepository{ctrl: ctrl}
	mock.recorder = &MockDeliveryRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockDeliveryRepository) EXPECT() *MockDeliveryRepositoryMockRecorder {
	return m.recorder
}

// FanOut mocks base method
func (m *MockDeliveryRepository) FanOut(ctx context.Context, campaign *domain.Campaign) (*domain.FanOutResult, error) {
	ret := m.ctrl.Call(m, "FanOut", ctx, campaign)
	ret0, _ := ret[0].(*domain.FanOutResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FanOut indicates an expected call of FanOut
func (mr *MockDeliveryRepositoryMockRecorder) FanOut(ctx, campaign interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FanOut", reflect.TypeOf((*MockDeliveryRepository)(nil).FanOut), ctx, campaign)
}

// ApplyEvent mocks base method
func (m *MockDeliveryRepository) ApplyEvent(ctx context.Context, tenantID string, event *domain.DeliveryEvent) (*domain.ApplyEventResult, error) {
	ret := m.ctrl.Call(m, "ApplyEvent", ctx, tenantID, event)
	ret0, _ := ret[0].(*domain.ApplyEventResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApplyEvent indicates an expected call of ApplyEvent
func (mr *MockDeliveryRepositoryMockRecorder) ApplyEvent(ctx, tenantID, event interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyEvent", reflect.TypeOf((*MockDeliveryRepository)(nil).ApplyEvent), ctx, tenantID, event)
}

// GetRecord mocks base method
func (m *MockDeliveryRepository) GetRecord(ctx context.Context, tenantID, campaignID, subscriberID string) (*domain.DeliveryRecord, error) {
	ret := m.ctrl.Call(m, "GetRecord", ctx, tenantID, campaignID, subscriberID)
	ret0, _ := ret[0].(*domain.DeliveryRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecord indicates an expected call of GetRecord
func (mr *MockDeliveryRepositoryMockRecorder) GetRecord(ctx, tenantID, campaignID, subscriberID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecord", reflect.TypeOf((*MockDeliveryRepository)(nil).GetRecord), ctx, tenantID, campaignID, subscriberID)
}

// ListRecords mocks base method
func (m *MockDeliveryRepository) ListRecords(ctx context.Context, tenantID, campaignID string) ([]*domain.DeliveryRecord, error) {
	ret := m.ctrl.Call(m, "ListRecords", ctx, tenantID, campaignID)
	ret0, _ := ret[0].([]*domain.DeliveryRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRecords indicates an expected call of ListRecords
func (mr *MockDeliveryRepositoryMockRecorder) ListRecords(ctx, tenantID, campaignID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRecords", reflect.TypeOf((*MockDeliveryRepository)(nil).ListRecords), ctx, tenantID, campaignID)
}

// CountPending mocks base method
func (m *MockDeliveryRepository) CountPending(ctx context.Context, tenantID, campaignID string) (int, error) {
	ret := m.ctrl.Call(m, "CountPending", ctx, tenantID, campaignID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountPending indicates an expected call of CountPending
func (mr *MockDeliveryRepositoryMockRecorder) CountPending(ctx, tenantID, campaignID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountPending", reflect.TypeOf((*MockDeliveryRepository)(nil).CountPending), ctx, tenantID, campaignID)
}
