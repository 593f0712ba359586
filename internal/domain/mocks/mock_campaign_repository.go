package mocks

import (
	"context"
	"reflect"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockCampaignRepository is a mock of CampaignRepository interface
type MockCampaignRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCampaignRepositoryMockRecorder
}

// MockCampaignRepositoryMockRecorder is the mock recorder for MockCampaignRepository
type MockCampaignRepositoryMockRecorder struct {
	mock *MockCampaignRepository
}

// NewMockCampaignRepository creates a new mock instance
func NewMockCampaignRepository(ctrl *gomock.Controller) *MockCampaignRepository {
	mock := &MockCampaignRepository{ctrl: ctrl}
	mock.recorder = &MockCampaignRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockCampaignRepository) EXPECT() *MockCampaignRepositoryMockRecorder {
	return m.recorder
}

// CreateCampaign mocks base method
func (m *MockCampaignRepository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	ret := m.ctrl.Call(m, "CreateCampaign", ctx, campaign)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateCampaign indicates an expected call of CreateCampaign
func (mr *MockCampaignRepositoryMockRecorder) CreateCampaign(ctx, campaign interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCampaign", reflect.TypeOf((*MockCampaignRepository)(nil).CreateCampaign), ctx, campaign)
}

// GetCampaign mocks base method
func (m *MockCampaignRepository) GetCampaign(ctx context.Context, tenantID, id string) (*domain.Campaign, error) {
	ret := m.ctrl.Call(m, "GetCampaign", ctx, tenantID, id)
	ret0, _ := ret[0].(*domain.Campaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCampaign indicates an expected call of GetCampaign
func (mr *MockCampaignRepositoryMockRecorder) GetCampaign(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCampaign", reflect.TypeOf((*MockCampaignRepository)(nil).GetCampaign), ctx, tenantID, id)
}

// UpdateCampaign mocks base method
func (m *MockCampaignRepository) UpdateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	ret := m.ctrl.Call(m, "UpdateCampaign", ctx, campaign)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateCampaign indicates an expected call of UpdateCampaign
func (mr *MockCampaignRepositoryMockRecorder) UpdateCampaign(ctx, campaign interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCampaign", reflect.TypeOf((*MockCampaignRepository)(nil).UpdateCampaign), ctx, campaign)
}

// ListCampaigns mocks base method
func (m *MockCampaignRepository) ListCampaigns(ctx context.Context, params domain.ListCampaignsParams) (*domain.CampaignListResponse, error) {
	ret := m.ctrl.Call(m, "ListCampaigns", ctx, params)
	ret0, _ := ret[0].(*domain.CampaignListResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCampaigns indicates an expected call of ListCampaigns
func (mr *MockCampaignRepositoryMockRecorder) ListCampaigns(ctx, params interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCampaigns", reflect.TypeOf((*MockCampaignRepository)(nil).ListCampaigns), ctx, params)
}

// DeleteCampaign mocks base method
func (m *MockCampaignRepository) DeleteCampaign(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "DeleteCampaign", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteCampaign indicates an expected call of DeleteCampaign
func (mr *MockCampaignRepositoryMockRecorder) DeleteCampaign(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCampaign", reflect.TypeOf((*MockCampaignRepository)(nil).DeleteCampaign), ctx, tenantID, id)
}

// GetDueCampaigns mocks base method
func (m *MockCampaignRepository) GetDueCampaigns(ctx context.Context, now time.Time) ([]*domain.Campaign, error) {
	ret := m.ctrl.Call(m, "GetDueCampaigns", ctx, now)
	ret0, _ := ret[0].([]*domain.Campaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDueCampaigns indicates an expected call of GetDueCampaigns
func (mr *MockCampaignRepositoryMockRecorder) GetDueCampaigns(ctx, now interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDueCampaigns", reflect.TypeOf((*MockCampaignRepository)(nil).GetDueCampaigns), ctx, now)
}

// GetSendingCampaigns mocks base method
func (m *MockCampaignRepository) GetSendingCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	ret := m.ctrl.Call(m, "GetSendingCampaigns", ctx)
	ret0, _ := ret[0].([]*domain.Campaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSendingCampaigns indicates an expected call of GetSendingCampaigns
func (mr *MockCampaignRepositoryMockRecorder) GetSendingCampaigns(ctx interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSendingCampaigns", reflect.TypeOf((*MockCampaignRepository)(nil).GetSendingCampaigns), ctx)
}
