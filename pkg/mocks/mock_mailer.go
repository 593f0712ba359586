package pkgmocks

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/mailkite/mailkite/pkg/mailer"
)

// MockMailer is a mock of Mailer interface
type MockMailer struct {
	ctrl     *gomock.Controller
	recorder *MockMailerMockRecorder
}

// MockMailerMockRecorder is the mock recorder for MockMailer
type MockMailerMockRecorder struct {
	mock *MockMailer
}

// NewMockMailer creates a new mock instance
func NewMockMailer(ctrl *gomock.Controller) *MockMailer {
	mock := &MockMailer{ctrl: ctrl}
	mock.recorder = &MockMailerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockMailer) EXPECT() *MockMailerMockRecorder {
	return m.recorder
}

// SendMessage mocks base method
func (m *MockMailer) SendMessage(message *mailer.Message) error {
	ret := m.ctrl.Call(m, "SendMessage", message)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendMessage indicates an expected call of SendMessage
func (mr *MockMailerMockRecorder) SendMessage(message interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMessage", reflect.TypeOf((*MockMailer)(nil).SendMessage), message)
}

// SendConfirmation mocks base method
func (m *MockMailer) SendConfirmation(email, confirmURL string) error {
	ret := m.ctrl.Call(m, "SendConfirmation", email, confirmURL)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendConfirmation indicates an expected call of SendConfirmation
func (mr *MockMailerMockRecorder) SendConfirmation(email, confirmURL interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendConfirmation", reflect.TypeOf((*MockMailer)(nil).SendConfirmation), email, confirmURL)
}
