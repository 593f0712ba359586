package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/domain/mocks"
)

func TestSuppressionService_AddEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSuppressionRepository(ctrl)
	service := NewSuppressionService(mockRepo, testLogger(ctrl))

	ctx := context.Background()
	tenantID := "tenant123"

	t.Run("email entry is lowercased", func(t *testing.T) {
		mockRepo.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.SuppressionEntry) error {
				assert.Equal(t, "bounced@example.com", entry.Email)
				return nil
			})

		entry, err := service.AddEntry(ctx, tenantID, &domain.CreateSuppressionRequest{
			Email:  "Bounced@Example.COM",
			Reason: domain.SuppressionReasonManual,
		})
		require.NoError(t, err)
		assert.Equal(t, tenantID, entry.TenantID)
		assert.NotEmpty(t, entry.ID)
	})

	t.Run("domain entry", func(t *testing.T) {
		mockRepo.EXPECT().CreateEntry(ctx, gomock.Any()).Return(nil)

		entry, err := service.AddEntry(ctx, tenantID, &domain.CreateSuppressionRequest{
			Domain: "Spamtrap.Example",
			Reason: domain.SuppressionReasonManual,
		})
		require.NoError(t, err)
		assert.Equal(t, "spamtrap.example", entry.Domain)
	})

	t.Run("empty request rejected", func(t *testing.T) {
		_, err := service.AddEntry(ctx, tenantID, &domain.CreateSuppressionRequest{})
		assert.Error(t, err)
	})
}

func TestSuppressionService_IsSuppressed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSuppressionRepository(ctrl)
	service := NewSuppressionService(mockRepo, testLogger(ctrl))

	ctx := context.Background()

	t.Run("empty email rejected", func(t *testing.T) {
		_, err := service.IsSuppressed(ctx, "tenant123", "")
		var verr domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("suppressed", func(t *testing.T) {
		mockRepo.EXPECT().IsSuppressed(ctx, "tenant123", "blocked@example.com").Return(true, nil)

		suppressed, err := service.IsSuppressed(ctx, "tenant123", "blocked@example.com")
		require.NoError(t, err)
		assert.True(t, suppressed)
	})
}
