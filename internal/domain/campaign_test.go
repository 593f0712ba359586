package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    CampaignStatus
		to      CampaignStatus
		allowed bool
	}{
		{CampaignStatusDraft, CampaignStatusScheduled, true},
		{CampaignStatusDraft, CampaignStatusSending, false},
		{CampaignStatusDraft, CampaignStatusSent, false},
		{CampaignStatusDraft, CampaignStatusFailed, true},
		{CampaignStatusScheduled, CampaignStatusSending, true},
		{CampaignStatusScheduled, CampaignStatusPaused, true},
		{CampaignStatusScheduled, CampaignStatusSent, false},
		{CampaignStatusSending, CampaignStatusSent, true},
		{CampaignStatusSending, CampaignStatusPaused, true},
		{CampaignStatusSending, CampaignStatusScheduled, false},
		{CampaignStatusPaused, CampaignStatusScheduled, true},
		{CampaignStatusPaused, CampaignStatusSending, true},
		{CampaignStatusPaused, CampaignStatusSent, false},
		{CampaignStatusSent, CampaignStatusDraft, false},
		{CampaignStatusSent, CampaignStatusSending, false},
		{CampaignStatusSent, CampaignStatusFailed, false},
		{CampaignStatusFailed, CampaignStatusDraft, false},
		{CampaignStatusFailed, CampaignStatusScheduled, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestCampaignStatus_IsTerminal(t *testing.T) {
	assert.True(t, CampaignStatusSent.IsTerminal())
	assert.True(t, CampaignStatusFailed.IsTerminal())
	assert.False(t, CampaignStatusDraft.IsTerminal())
	assert.False(t, CampaignStatusScheduled.IsTerminal())
	assert.False(t, CampaignStatusSending.IsTerminal())
	assert.False(t, CampaignStatusPaused.IsTerminal())
}

func TestCampaign_ReadyToSchedule(t *testing.T) {
	templateID := "tpl1"
	c := &Campaign{
		ID:          "c1",
		TenantID:    "t1",
		Name:        "Launch",
		Subject:     "Hello",
		SenderEmail: "news@example.com",
		ListIDs:     []string{"l1"},
		Status:      CampaignStatusDraft,
	}
	require.NoError(t, c.ReadyToSchedule())

	noLists := *c
	noLists.ListIDs = nil
	err := noLists.ReadyToSchedule()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no target lists")

	noSender := *c
	noSender.SenderEmail = ""
	err = noSender.ReadyToSchedule()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sender identity")

	noContent := *c
	noContent.Subject = ""
	noContent.TemplateID = nil
	require.Error(t, noContent.ReadyToSchedule())

	templated := *c
	templated.Subject = ""
	templated.TemplateID = &templateID
	require.NoError(t, templated.ReadyToSchedule())
}

func TestCampaign_Validate(t *testing.T) {
	c := &Campaign{
		ID:       "c1",
		TenantID: "t1",
		Name:     "Launch",
		Status:   CampaignStatusDraft,
	}
	require.NoError(t, c.Validate())

	c.Status = "published"
	require.Error(t, c.Validate())

	c.Status = CampaignStatusDraft
	c.SenderEmail = "not-an-email"
	require.Error(t, c.Validate())
}
