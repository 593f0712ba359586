package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/pkg/logger"
)

type ListService struct {
	repo   domain.ListRepository
	logger logger.Logger
}

func NewListService(repo domain.ListRepository, logger logger.Logger) *ListService {
	return &ListService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ListService) CreateList(ctx context.Context, tenantID string, req *domain.CreateListRequest) (*domain.List, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	list := &domain.List{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.CreateList(ctx, list); err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			return nil, err
		}
		s.logger.WithField("list_id", list.ID).Error(fmt.Sprintf("Failed to create list: %v", err))
		return nil, fmt.Errorf("failed to create list: %w", err)
	}
	return list, nil
}

func (s *ListService) GetListByID(ctx context.Context, tenantID, id string) (*domain.List, error) {
	list, err := s.repo.GetListByID(ctx, tenantID, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("list_id", id).Error(fmt.Sprintf("Failed to get list: %v", err))
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return list, nil
}

func (s *ListService) GetLists(ctx context.Context, tenantID string) ([]*domain.List, error) {
	lists, err := s.repo.GetLists(ctx, tenantID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get lists: %v", err))
		return nil, fmt.Errorf("failed to get lists: %w", err)
	}
	return lists, nil
}

func (s *ListService) UpdateList(ctx context.Context, tenantID string, req *domain.UpdateListRequest) (*domain.List, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	list, err := s.repo.GetListByID(ctx, tenantID, req.ID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("list_id", req.ID).Error(fmt.Sprintf("Failed to get list: %v", err))
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	list.Name = req.Name
	list.Description = req.Description

	if err := s.repo.UpdateList(ctx, list); err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			return nil, err
		}
		s.logger.WithField("list_id", list.ID).Error(fmt.Sprintf("Failed to update list: %v", err))
		return nil, fmt.Errorf("failed to update list: %w", err)
	}
	return list, nil
}

func (s *ListService) DeleteList(ctx context.Context, tenantID, id string) error {
	if err := s.repo.DeleteList(ctx, tenantID, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("list_id", id).Error(fmt.Sprintf("Failed to delete list: %v", err))
		return fmt.Errorf("failed to delete list: %w", err)
	}
	return nil
}
