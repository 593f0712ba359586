package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockDeliveryService is a mock of DeliveryService interface
type MockDeliveryService struct {
	ctrl     *gomock.Controller
	recorder *MockDeliveryServiceMockRecorder
}

// MockDeliveryServiceMockRecorder is the mock recorder for MockDeliveryService
type MockDeliveryServiceMockRecorder struct {
	mock *MockDeliveryService
}

// NewMockDeliveryService creates a new mock instance
func NewMockDeliveryService(ctrl *gomock.Controller) *MockDeliveryService {
	mock := &MockDeliveryService{ctrl: ctrl}
	mock.recorder = &MockDeliveryServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockDeliveryService) EXPECT() *MockDeliveryServiceMockRecorder {
	return m.recorder
}

// ApplyEvent mocks base method
func (m *MockDeliveryService) ApplyEvent(ctx context.Context, tenantID string, event *domain.DeliveryEvent) (*domain.ApplyEventResult, error) {
	ret := m.ctrl.Call(m, "ApplyEvent", ctx, tenantID, event)
	ret0, _ := ret[0].(*domain.ApplyEventResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApplyEvent indicates an expected call of ApplyEvent
func (mr *MockDeliveryServiceMockRecorder) ApplyEvent(ctx, tenantID, event interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyEvent", reflect.TypeOf((*MockDeliveryService)(nil).ApplyEvent), ctx, tenantID, event)
}

// GetRecord mocks base method
func (m *MockDeliveryService) GetRecord(ctx context.Context, tenantID, campaignID, subscriberID string) (*domain.DeliveryRecord, error) {
	ret := m.ctrl.Call(m, "GetRecord", ctx, tenantID, campaignID, subscriberID)
	ret0, _ := ret[0].(*domain.DeliveryRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecord indicates an expected call of GetRecord
func (mr *MockDeliveryServiceMockRecorder) GetRecord(ctx, tenantID, campaignID, subscriberID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecord", reflect.TypeOf((*MockDeliveryService)(nil).GetRecord), ctx, tenantID, campaignID, subscriberID)
}

// ListRecords mocks base method
func (m *MockDeliveryService) ListRecords(ctx context.Context, tenantID, campaignID string) ([]*domain.DeliveryRecord, error) {
	ret := m.ctrl.Call(m, "ListRecords", ctx, tenantID, campaignID)
	ret0, _ := ret[0].([]*domain.DeliveryRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRecords indicates an expected call of ListRecords
func (mr *MockDeliveryServiceMockRecorder) ListRecords(ctx, tenantID, campaignID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRecords", reflect.TypeOf((*MockDeliveryService)(nil).ListRecords), ctx, tenantID, campaignID)
}

// GetClicks mocks base method
func (m *MockDeliveryService) GetClicks(ctx context.Context, tenantID, campaignID string) ([]*domain.LinkClickEvent, error) {
	ret := m.ctrl.Call(m, "GetClicks", ctx, tenantID, campaignID)
	ret0, _ := ret[0].([]*domain.LinkClickEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetClicks indicates an expected call of GetClicks
func (mr *MockDeliveryServiceMockRecorder) GetClicks(ctx, tenantID, campaignID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetClicks", reflect.TypeOf((*MockDeliveryService)(nil).GetClicks), ctx, tenantID, campaignID)
}

// GetViews mocks base method
func (m *MockDeliveryService) GetViews(ctx context.Context, tenantID, campaignID string) ([]*domain.WebViewEvent, error) {
	ret := m.ctrl.Call(m, "GetViews", ctx, tenantID, campaignID)
	ret0, _ := ret[0].([]*domain.WebViewEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetViews indicates an expected call of GetViews
func (mr *MockDeliveryServiceMockRecorder) GetViews(ctx, tenantID, campaignID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetViews", reflect.TypeOf((*MockDeliveryService)(nil).GetViews), ctx, tenantID, campaignID)
}
