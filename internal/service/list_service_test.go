package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/domain/mocks"
	pkgmocks "github.com/mailkite/mailkite/pkg/mocks"
)

// testLogger returns a logger mock that accepts any calls
func testLogger(ctrl *gomock.Controller) *pkgmocks.MockLogger {
	l := pkgmocks.NewMockLogger(ctrl)
	l.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(l).AnyTimes()
	l.EXPECT().WithFields(gomock.Any()).Return(l).AnyTimes()
	l.EXPECT().Debug(gomock.Any()).AnyTimes()
	l.EXPECT().Info(gomock.Any()).AnyTimes()
	l.EXPECT().Warn(gomock.Any()).AnyTimes()
	l.EXPECT().Error(gomock.Any()).AnyTimes()
	return l
}

func TestListService_CreateList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockListRepository(ctrl)
	service := NewListService(mockRepo, testLogger(ctrl))

	ctx := context.Background()
	tenantID := "tenant123"

	t.Run("successful create", func(t *testing.T) {
		var created *domain.List
		mockRepo.EXPECT().CreateList(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, list *domain.List) error {
				created = list
				return nil
			})

		list, err := service.CreateList(ctx, tenantID, &domain.CreateListRequest{
			Name:        "Newsletter",
			Description: "Weekly digest",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, list.ID)
		assert.Equal(t, tenantID, list.TenantID)
		assert.Equal(t, "Newsletter", list.Name)
		assert.Equal(t, created, list)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := service.CreateList(ctx, tenantID, &domain.CreateListRequest{})
		assert.Error(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().CreateList(ctx, gomock.Any()).Return(errors.New("connection refused"))

		_, err := service.CreateList(ctx, tenantID, &domain.CreateListRequest{Name: "Newsletter"})
		assert.ErrorContains(t, err, "failed to create list")
	})
}

func TestListService_GetListByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockListRepository(ctrl)
	service := NewListService(mockRepo, testLogger(ctrl))

	ctx := context.Background()
	tenantID := "tenant123"

	t.Run("found", func(t *testing.T) {
		expected := &domain.List{ID: "list123", TenantID: tenantID, Name: "Newsletter"}
		mockRepo.EXPECT().GetListByID(ctx, tenantID, "list123").Return(expected, nil)

		list, err := service.GetListByID(ctx, tenantID, "list123")
		require.NoError(t, err)
		assert.Equal(t, expected, list)
	})

	t.Run("not found passes through", func(t *testing.T) {
		mockRepo.EXPECT().GetListByID(ctx, tenantID, "missing").
			Return(nil, &domain.ErrNotFound{Entity: "list", ID: "missing"})

		_, err := service.GetListByID(ctx, tenantID, "missing")
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestListService_UpdateList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockListRepository(ctrl)
	service := NewListService(mockRepo, testLogger(ctrl))

	ctx := context.Background()
	tenantID := "tenant123"
	existing := &domain.List{ID: "list123", TenantID: tenantID, Name: "Old name"}

	mockRepo.EXPECT().GetListByID(ctx, tenantID, "list123").Return(existing, nil)
	mockRepo.EXPECT().UpdateList(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, list *domain.List) error {
			assert.Equal(t, "New name", list.Name)
			return nil
		})

	list, err := service.UpdateList(ctx, tenantID, &domain.UpdateListRequest{
		ID:   "list123",
		Name: "New name",
	})
	require.NoError(t, err)
	assert.Equal(t, "New name", list.Name)
}

func TestListService_DeleteList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockListRepository(ctrl)
	service := NewListService(mockRepo, testLogger(ctrl))

	ctx := context.Background()

	mockRepo.EXPECT().DeleteList(ctx, "tenant123", "list123").Return(nil)
	assert.NoError(t, service.DeleteList(ctx, "tenant123", "list123"))

	mockRepo.EXPECT().DeleteList(ctx, "tenant123", "missing").
		Return(&domain.ErrNotFound{Entity: "list", ID: "missing"})
	err := service.DeleteList(ctx, "tenant123", "missing")
	assert.True(t, domain.IsNotFound(err))
}
