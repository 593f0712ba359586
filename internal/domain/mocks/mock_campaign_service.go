package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockCampaignService is a mock of CampaignService interface
type MockCampaignService struct {
	ctrl     *gomock.Controller
	recorder *MockCampaignServiceMockRecorder
}

// MockCampaignServiceMockRecorder is the mock recorder for MockCampaignService
type MockCampaignServiceMockRecorder struct {
	mock *MockCampaignService
}

// NewMockCampaignService creates a new mock instance
func NewMockCampaignService(ctrl *gomock.Controller) *MockCampaignService {
	mock := &MockCampaignService{ctrl: ctrl}
	mock.recorder = &MockCampaignServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockCampaignService) EXPECT() *MockCampaignServiceMockRecorder {
	return m.recorder
}

// CreateCampaign mocks base method
func (m *MockCampaignService) CreateCampaign(ctx context.Context, tenantID string, req *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	ret := m.ctrl.Call(m, "CreateCampaign", ctx, tenantID, req)
	ret0, _ := ret[0].(*domain.Campaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCampaign indicates an expected call of CreateCampaign
func (mr *MockCampaignServiceMockRecorder) CreateCampaign(ctx, tenantID, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCampaign", reflect.TypeOf((*MockCampaignService)(nil).CreateCampaign), ctx, tenantID, req)
}

// GetCampaign mocks base method
func (m *MockCampaignService) GetCampaign(ctx context.Context, tenantID, id string) (*domain.Campaign, error) {
	ret := m.ctrl.Call(m, "GetCampaign", ctx, tenantID, id)
	ret0, _ := ret[0].(*domain.Campaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCampaign indicates an expected call of GetCampaign
func (mr *MockCampaignServiceMockRecorder) GetCampaign(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCampaign", reflect.TypeOf((*MockCampaignService)(nil).GetCampaign), ctx, tenantID, id)
}

// UpdateCampaign mocks base method
func (m *MockCampaignService) UpdateCampaign(ctx context.Context, tenantID string, req *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	ret := m.ctrl.Call(m, "UpdateCampaign", ctx, tenantID, req)
	ret0, _ := ret[0].(*domain.Campaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateCampaign indicates an expected call of UpdateCampaign
func (mr *MockCampaignServiceMockRecorder) UpdateCampaign(ctx, tenantID, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCampaign", reflect.TypeOf((*MockCampaignService)(nil).UpdateCampaign), ctx, tenantID, req)
}

// ListCampaigns mocks base method
func (m *MockCampaignService) ListCampaigns(ctx context.Context, params domain.ListCampaignsParams) (*domain.CampaignListResponse, error) {
	ret := m.ctrl.Call(m, "ListCampaigns", ctx, params)
	ret0, _ := ret[0].(*domain.CampaignListResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCampaigns indicates an expected call of ListCampaigns
func (mr *MockCampaignServiceMockRecorder) ListCampaigns(ctx, params interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCampaigns", reflect.TypeOf((*MockCampaignService)(nil).ListCampaigns), ctx, params)
}

// ScheduleCampaign mocks base method
func (m *MockCampaignService) ScheduleCampaign(ctx context.Context, tenantID string, req *domain.ScheduleCampaignRequest) error {
	ret := m.ctrl.Call(m, "ScheduleCampaign", ctx, tenantID, req)
	ret0, _ := ret[0].(error)
	return ret0
}

// ScheduleCampaign indicates an expected call of ScheduleCampaign
func (mr *MockCampaignServiceMockRecorder) ScheduleCampaign(ctx, tenantID, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ScheduleCampaign", reflect.TypeOf((*MockCampaignService)(nil).ScheduleCampaign), ctx, tenantID, req)
}

// StartSending mocks base method
func (m *MockCampaignService) StartSending(ctx context.Context, tenantID, id string) (*domain.FanOutResult, error) {
	ret := m.ctrl.Call(m, "StartSending", ctx, tenantID, id)
	ret0, _ := ret[0].(*domain.FanOutResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StartSending indicates an expected call of StartSending
func (mr *MockCampaignServiceMockRecorder) StartSending(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StartSending", reflect.TypeOf((*MockCampaignService)(nil).StartSending), ctx, tenantID, id)
}

// CompleteSending mocks base method
func (m *MockCampaignService) CompleteSending(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "CompleteSending", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// CompleteSending indicates an expected call of CompleteSending
func (mr *MockCampaignServiceMockRecorder) CompleteSending(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompleteSending", reflect.TypeOf((*MockCampaignService)(nil).CompleteSending), ctx, tenantID, id)
}

// PauseCampaign mocks base method
func (m *MockCampaignService) PauseCampaign(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "PauseCampaign", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// PauseCampaign indicates an expected call of PauseCampaign
func (mr *MockCampaignServiceMockRecorder) PauseCampaign(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PauseCampaign", reflect.TypeOf((*MockCampaignService)(nil).PauseCampaign), ctx, tenantID, id)
}

// ResumeCampaign mocks base method
func (m *MockCampaignService) ResumeCampaign(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "ResumeCampaign", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// ResumeCampaign indicates an expected call of ResumeCampaign
func (mr *MockCampaignServiceMockRecorder) ResumeCampaign(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResumeCampaign", reflect.TypeOf((*MockCampaignService)(nil).ResumeCampaign), ctx, tenantID, id)
}

// FailCampaign mocks base method
func (m *MockCampaignService) FailCampaign(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "FailCampaign", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// FailCampaign indicates an expected call of FailCampaign
func (mr *MockCampaignServiceMockRecorder) FailCampaign(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FailCampaign", reflect.TypeOf((*MockCampaignService)(nil).FailCampaign), ctx, tenantID, id)
}

// DeleteCampaign mocks base method
func (m *MockCampaignService) DeleteCampaign(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "DeleteCampaign", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteCampaign indicates an expected call of DeleteCampaign
func (mr *MockCampaignServiceMockRecorder) DeleteCampaign(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCampaign", reflect.TypeOf((*MockCampaignService)(nil).DeleteCampaign), ctx, tenantID, id)
}
