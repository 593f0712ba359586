package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/domain/mocks"
	"github.com/mailkite/mailkite/internal/http/middleware"
)

func setupTemplateHandlerTest(t *testing.T) (*gomock.Controller, *mocks.MockTemplateService, *TemplateHandler) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockTemplateService(ctrl)
	auth := middleware.NewAuthMiddleware(mocks.NewMockUserService(ctrl))
	handler := NewTemplateHandler(mockService, auth, testLogger(ctrl))
	return ctrl, mockService, handler
}

func TestTemplateHandler_HandleList(t *testing.T) {
	ctrl, mockService, handler := setupTemplateHandlerTest(t)
	defer ctrl.Finish()

	mockService.EXPECT().GetTemplates(gomock.Any(), "tenant123").
		Return([]*domain.Template{
			{ID: "tpl1", Name: "Welcome"},
			{ID: "tpl2", Name: "Monthly digest"},
		}, nil)

	rec := httptest.NewRecorder()
	handler.handleList(rec, authedRequest(http.MethodGet, "/api/templates.list", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["templates"].([]interface{}), 2)
}

func TestTemplateHandler_HandleGet(t *testing.T) {
	ctrl, mockService, handler := setupTemplateHandlerTest(t)
	defer ctrl.Finish()

	t.Run("found", func(t *testing.T) {
		mockService.EXPECT().GetTemplateByID(gomock.Any(), "tenant123", "tpl1").
			Return(&domain.Template{ID: "tpl1", Name: "Welcome"}, nil)

		rec := httptest.NewRecorder()
		handler.handleGet(rec, authedRequest(http.MethodGet, "/api/templates.get?id=tpl1", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Welcome", decodeBody(t, rec)["template"].(map[string]interface{})["name"])
	})

	t.Run("not found", func(t *testing.T) {
		mockService.EXPECT().GetTemplateByID(gomock.Any(), "tenant123", "ghost").
			Return(nil, &domain.ErrNotFound{Entity: "template", ID: "ghost"})

		rec := httptest.NewRecorder()
		handler.handleGet(rec, authedRequest(http.MethodGet, "/api/templates.get?id=ghost", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.handleGet(rec, authedRequest(http.MethodGet, "/api/templates.get", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTemplateHandler_HandleCreate(t *testing.T) {
	ctrl, mockService, handler := setupTemplateHandlerTest(t)
	defer ctrl.Finish()

	t.Run("created", func(t *testing.T) {
		mockService.EXPECT().CreateTemplate(gomock.Any(), "tenant123", gomock.Any()).
			DoAndReturn(func(ctx context.Context, tenantID string, req *domain.CreateTemplateRequest) (*domain.Template, error) {
				assert.Equal(t, "Welcome", req.Name)
				assert.Contains(t, req.BodyHTML, "{{ first_name }}")
				return &domain.Template{ID: "tpl1", Name: req.Name, BodyHTML: req.BodyHTML}, nil
			})

		rec := httptest.NewRecorder()
		handler.handleCreate(rec, authedRequest(http.MethodPost, "/api/templates.create",
			jsonBody(t, domain.CreateTemplateRequest{
				Name:     "Welcome",
				Subject:  "Welcome aboard",
				BodyHTML: "<p>Hello {{ first_name }}</p>",
			})))

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("bad template syntax", func(t *testing.T) {
		mockService.EXPECT().CreateTemplate(gomock.Any(), "tenant123", gomock.Any()).
			Return(nil, domain.NewValidationError("body_html is not a valid template"))

		rec := httptest.NewRecorder()
		handler.handleCreate(rec, authedRequest(http.MethodPost, "/api/templates.create",
			jsonBody(t, domain.CreateTemplateRequest{Name: "Broken", BodyHTML: "{{ if }}"})))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTemplateHandler_HandleDelete(t *testing.T) {
	ctrl, mockService, handler := setupTemplateHandlerTest(t)
	defer ctrl.Finish()

	t.Run("deleted", func(t *testing.T) {
		mockService.EXPECT().DeleteTemplate(gomock.Any(), "tenant123", "tpl1").Return(nil)

		rec := httptest.NewRecorder()
		handler.handleDelete(rec, authedRequest(http.MethodPost, "/api/templates.delete",
			jsonBody(t, deleteTemplateRequest{ID: "tpl1"})))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["success"])
	})

	t.Run("referenced by a campaign", func(t *testing.T) {
		mockService.EXPECT().DeleteTemplate(gomock.Any(), "tenant123", "tpl1").
			Return(domain.NewValidationError("template is used by an active campaign"))

		rec := httptest.NewRecorder()
		handler.handleDelete(rec, authedRequest(http.MethodPost, "/api/templates.delete",
			jsonBody(t, deleteTemplateRequest{ID: "tpl1"})))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTemplateHandler_HandleRender(t *testing.T) {
	ctrl, mockService, handler := setupTemplateHandlerTest(t)
	defer ctrl.Finish()

	t.Run("rendered with variables", func(t *testing.T) {
		mockService.EXPECT().RenderTemplate(gomock.Any(), "tenant123", gomock.Any()).
			DoAndReturn(func(ctx context.Context, tenantID string, req *domain.RenderTemplateRequest) (*domain.RenderedTemplate, error) {
				assert.Equal(t, "tpl1", req.ID)
				assert.Equal(t, "Ada", req.Variables["first_name"])
				return &domain.RenderedTemplate{
					Subject:  "Welcome aboard",
					BodyHTML: "<p>Hello Ada</p>",
				}, nil
			})

		rec := httptest.NewRecorder()
		handler.handleRender(rec, authedRequest(http.MethodPost, "/api/templates.render",
			jsonBody(t, domain.RenderTemplateRequest{
				ID:        "tpl1",
				Variables: map[string]interface{}{"first_name": "Ada"},
			})))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<p>Hello Ada</p>", decodeBody(t, rec)["body_html"])
	})

	t.Run("unknown template", func(t *testing.T) {
		mockService.EXPECT().RenderTemplate(gomock.Any(), "tenant123", gomock.Any()).
			Return(nil, &domain.ErrNotFound{Entity: "template", ID: "ghost"})

		rec := httptest.NewRecorder()
		handler.handleRender(rec, authedRequest(http.MethodPost, "/api/templates.render",
			jsonBody(t, domain.RenderTemplateRequest{ID: "ghost"})))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
