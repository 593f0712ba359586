package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriber_Domain(t *testing.T) {
	s := &Subscriber{Email: "Jo@Example.COM"}
	assert.Equal(t, "example.com", s.Domain())

	assert.Equal(t, "", (&Subscriber{Email: "not-an-email"}).Domain())
}

func TestSubscriber_Validate(t *testing.T) {
	s := &Subscriber{
		ID:       "s1",
		TenantID: "t1",
		Email:    "jo@example.com",
		Status:   SubscriberStatusActive,
	}
	require.NoError(t, s.Validate())

	s.Status = "sleeping"
	require.Error(t, s.Validate())

	s.Status = SubscriberStatusActive
	s.Email = "nope"
	require.Error(t, s.Validate())
}

func TestImportSubscribersRequest_Validate(t *testing.T) {
	require.Error(t, (&ImportSubscribersRequest{}).Validate())

	req := &ImportSubscribersRequest{
		Subscribers: []CreateSubscriberRequest{
			{Email: "a@x.com"},
			{Email: "bad"},
		},
	}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subscriber 1")
}
