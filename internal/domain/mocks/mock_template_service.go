package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockTemplateService is a mock of TemplateService interface
type MockTemplateService struct {
	ctrl     *gomock.Controller
	recorder *MockTemplateServiceMockRecorder
}

// MockTemplateServiceMockRecorder is the mock recorder for MockTemplateService
type MockTemplateServiceMockRecorder struct {
	mock *MockTemplateService
}

// NewMockTemplateService creates a new mock instance
func NewMockTemplateService(ctrl *gomock.Controller) *MockTemplateService {
	mock := &MockTemplateService{ctrl: ctrl}
	mock.recorder = &MockTemplateServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockTemplateService) EXPECT() *MockTemplateServiceMockRecorder {
	return m.recorder
}

// CreateTemplate mocks base method
func (m *MockTemplateService) CreateTemplate(ctx context.Context, tenantID string, req *domain.CreateTemplateRequest) (*domain.Template, error) {
	ret := m.ctrl.Call(m, "CreateTemplate", ctx, tenantID, req)
	ret0, _ := ret[0].(*domain.Template)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTemplate indicates an expected call of CreateTemplate
func (mr *MockTemplateServiceMockRecorder) CreateTemplate(ctx, tenantID, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTemplate", reflect.TypeOf((*MockTemplateService)(nil).CreateTemplate), ctx, tenantID, req)
}

// GetTemplateByID mocks base method
func (m *MockTemplateService) GetTemplateByID(ctx context.Context, tenantID, id string) (*domain.Template, error) {
	ret := m.ctrl.Call(m, "GetTemplateByID", ctx, tenantID, id)
	ret0, _ := ret[0].(*domain.Template)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTemplateByID indicates an expected call of GetTemplateByID
func (mr *MockTemplateServiceMockRecorder) GetTemplateByID(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTemplateByID", reflect.TypeOf((*MockTemplateService)(nil).GetTemplateByID), ctx, tenantID, id)
}

// GetTemplates mocks base method
func (m *MockTemplateService) GetTemplates(ctx context.Context, tenantID string) ([]*domain.Template, error) {
	ret := m.ctrl.Call(m, "GetTemplates", ctx, tenantID)
	ret0, _ := ret[0].([]*domain.Template)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTemplates indicates an expected call of GetTemplates
func (mr *MockTemplateServiceMockRecorder) GetTemplates(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTemplates", reflect.TypeOf((*MockTemplateService)(nil).GetTemplates), ctx, tenantID)
}

// UpdateTemplate mocks base method
func (m *MockTemplateService) UpdateTemplate(ctx context.Context, tenantID string, req *domain.UpdateTemplateRequest) (*domain.Template, error) {
	ret := m.ctrl.Call(m, "UpdateTemplate", ctx, tenantID, req)
	ret0, _ := ret[0].(*domain.Template)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateTemplate indicates an expected call of UpdateTemplate
func (mr *MockTemplateServiceMockRecorder) UpdateTemplate(ctx, tenantID, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateTemplate", reflect.TypeOf((*MockTemplateService)(nil).UpdateTemplate), ctx, tenantID, req)
}

// DeleteTemplate mocks base method
func (m *MockTemplateService) DeleteTemplate(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "DeleteTemplate", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTemplate indicates an expected call of DeleteTemplate
func (mr *MockTemplateServiceMockRecorder) DeleteTemplate(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTemplate", reflect.TypeOf((*MockTemplateService)(nil).DeleteTemplate), ctx, tenantID, id)
}

// RenderTemplate mocks base method
func (m *MockTemplateService) RenderTemplate(ctx context.Context, tenantID string, req *domain.RenderTemplateRequest) (*domain.RenderedTemplate, error) {
	ret := m.ctrl.Call(m, "RenderTemplate", ctx, tenantID, req)
	ret0, _ := ret[0].(*domain.RenderedTemplate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RenderTemplate indicates an expected call of RenderTemplate
func (mr *MockTemplateServiceMockRecorder) RenderTemplate(ctx, tenantID, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RenderTemplate", reflect.TypeOf((*MockTemplateService)(nil).RenderTemplate), ctx, tenantID, req)
}
