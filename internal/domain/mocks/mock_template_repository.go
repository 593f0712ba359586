package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/internal/domain"
)

// MockTemplateRepository is a mock of TemplateRepository interface
type MockTemplateRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTemplateRepositoryMockRecorder
}

// MockTemplateRepositoryMockRecorder is the mock recorder for MockTemplateRepository
type MockTemplateRepositoryMockRecorder struct {
	mock *MockTemplateRepository
}

// NewMockTemplateRepository creates a new mock instance
func NewMockTemplateRepository(ctrl *gomock.Controller) *MockTemplateRepository {
	mock := &MockTemplateRepository{ctrl: ctrl}
	mock.recorder = &MockTemplateRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockTemplateRepository) EXPECT() *MockTemplateRepositoryMockRecorder {
	return m.recorder
}

// CreateTemplate mocks base method
func (m *MockTemplateRepository) CreateTemplate(ctx context.Context, template *domain.Template) error {
	ret := m.ctrl.Call(m, "CreateTemplate", ctx, template)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateTemplate indicates an expected call of CreateTemplate
func (mr *MockTemplateRepositoryMockRecorder) CreateTemplate(ctx, template interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTemplate", reflect.TypeOf((*MockTemplateRepository)(nil).CreateTemplate), ctx, template)
}

// GetTemplateByID mocks base method
func (m *MockTemplateRepository) GetTemplateByID(ctx context.Context, tenantID, id string) (*domain.Template, error) {
	ret := m.ctrl.Call(m, "GetTemplateByID", ctx, tenantID, id)
	ret0, _ := ret[0].(*domain.Template)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTemplateByID indicates an expected call of GetTemplateByID
func (mr *MockTemplateRepositoryMockRecorder) GetTemplateByID(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTemplateByID", reflect.TypeOf((*MockTemplateRepository)(nil).GetTemplateByID), ctx, tenantID, id)
}

// GetTemplates mocks base method
func (m *MockTemplateRepository) GetTemplates(ctx context.Context, tenantID string) ([]*domain.Template, error) {
	ret := m.ctrl.Call(m, "GetTemplates", ctx, tenantID)
	ret0, _ := ret[0].([]*domain.Template)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTemplates indicates an expected call of GetTemplates
func (mr *MockTemplateRepositoryMockRecorder) GetTemplates(ctx, tenantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTemplates", reflect.TypeOf((*MockTemplateRepository)(nil).GetTemplates), ctx, tenantID)
}

// UpdateTemplate mocks base method
func (m *MockTemplateRepository) UpdateTemplate(ctx context.Context, template *domain.Template) error {
	ret := m.ctrl.Call(m, "UpdateTemplate", ctx, template)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateTemplate indicates an expected call of UpdateTemplate
func (mr *MockTemplateRepositoryMockRecorder) UpdateTemplate(ctx, template interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateTemplate", reflect.TypeOf((*MockTemplateRepository)(nil).UpdateTemplate), ctx, template)
}

// DeleteTemplate mocks base method
func (m *MockTemplateRepository) DeleteTemplate(ctx context.Context, tenantID, id string) error {
	ret := m.ctrl.Call(m, "DeleteTemplate", ctx, tenantID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTemplate indicates an expected call of DeleteTemplate
func (mr *MockTemplateRepositoryMockRecorder) DeleteTemplate(ctx, tenantID, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTemplate", reflect.TypeOf((*MockTemplateRepository)(nil).DeleteTemplate), ctx, tenantID, id)
}
