package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/osteele/liquid"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/pkg/logger"
)

type TemplateService struct {
	repo   domain.TemplateRepository
	engine *liquid.Engine
	logger logger.Logger
}

func NewTemplateService(repo domain.TemplateRepository, logger logger.Logger) *TemplateService {
	return &TemplateService{
		repo:   repo,
		engine: liquid.NewEngine(),
		logger: logger,
	}
}

func (s *TemplateService) CreateTemplate(ctx context.Context, tenantID string, req *domain.CreateTemplateRequest) (*domain.Template, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	template := &domain.Template{
		ID:       uuid.New().String(),
		TenantID: tenantID,
		Name:     req.Name,
		Subject:  req.Subject,
		BodyHTML: req.BodyHTML,
		BodyText: req.BodyText,
	}

	// Reject bodies the renderer cannot parse
	if err := s.checkSyntax(template); err != nil {
		return nil, err
	}

	if err := s.repo.CreateTemplate(ctx, template); err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			return nil, err
		}
		s.logger.WithField("template_id", template.ID).Error(fmt.Sprintf("Failed to create template: %v", err))
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return template, nil
}

func (s *TemplateService) GetTemplateByID(ctx context.Context, tenantID, id string) (*domain.Template, error) {
	template, err := s.repo.GetTemplateByID(ctx, tenantID, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("template_id", id).Error(fmt.Sprintf("Failed to get template: %v", err))
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return template, nil
}

func (s *TemplateService) GetTemplates(ctx context.Context, tenantID string) ([]*domain.Template, error) {
	templates, err := s.repo.GetTemplates(ctx, tenantID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get templates: %v", err))
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}
	return templates, nil
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, tenantID string, req *domain.UpdateTemplateRequest) (*domain.Template, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	template, err := s.repo.GetTemplateByID(ctx, tenantID, req.ID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("template_id", req.ID).Error(fmt.Sprintf("Failed to get template: %v", err))
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	template.Name = req.Name
	template.Subject = req.Subject
	template.BodyHTML = req.BodyHTML
	template.BodyText = req.BodyText

	if err := s.checkSyntax(template); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTemplate(ctx, template); err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			return nil, err
		}
		s.logger.WithField("template_id", template.ID).Error(fmt.Sprintf("Failed to update template: %v", err))
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return template, nil
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, tenantID, id string) error {
	if err := s.repo.DeleteTemplate(ctx, tenantID, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		if _, ok := err.(domain.ValidationError); ok {
			return err
		}
		s.logger.WithField("template_id", id).Error(fmt.Sprintf("Failed to delete template: %v", err))
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

// RenderTemplate renders the subject and bodies with the given variables
func (s *TemplateService) RenderTemplate(ctx context.Context, tenantID string, req *domain.RenderTemplateRequest) (*domain.RenderedTemplate, error) {
	if req.ID == "" {
		return nil, domain.NewValidationError("id is required")
	}

	template, err := s.GetTemplateByID(ctx, tenantID, req.ID)
	if err != nil {
		return nil, err
	}
	return s.Render(template, req.Variables)
}

// Render renders a template with the given variables
func (s *TemplateService) Render(template *domain.Template, variables map[string]interface{}) (*domain.RenderedTemplate, error) {
	subject, err := s.engine.ParseAndRenderString(template.Subject, variables)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("failed to render subject: %v", err))
	}

	bodyHTML, err := s.engine.ParseAndRenderString(template.BodyHTML, variables)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("failed to render body_html: %v", err))
	}

	bodyText := ""
	if template.BodyText != "" {
		bodyText, err = s.engine.ParseAndRenderString(template.BodyText, variables)
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("failed to render body_text: %v", err))
		}
	}

	return &domain.RenderedTemplate{
		Subject:  subject,
		BodyHTML: bodyHTML,
		BodyText: bodyText,
	}, nil
}

func (s *TemplateService) checkSyntax(template *domain.Template) error {
	if _, err := s.engine.ParseString(template.Subject); err != nil {
		return domain.NewValidationError(fmt.Sprintf("invalid subject template: %v", err))
	}
	if _, err := s.engine.ParseString(template.BodyHTML); err != nil {
		return domain.NewValidationError(fmt.Sprintf("invalid body_html template: %v", err))
	}
	if template.BodyText != "" {
		if _, err := s.engine.ParseString(template.BodyText); err != nil {
			return domain.NewValidationError(fmt.Sprintf("invalid body_text template: %v", err))
		}
	}
	return nil
}
