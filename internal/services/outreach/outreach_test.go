package outreach

import (
	"context"
	"testing"
	"time"

	"charity/internal/models"
	"charity/internal/repositories"
	"charity/internal/repositories/repotest"
	"charity/internal/utils/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService(t *testing.T) {
	db := repotest.NewDB(t)
	svc := NewEventService(repositories.NewEventRepository(db))
	ctx := context.Background()

	soon := time.Now().Add(72 * time.Hour)
	past := time.Now().Add(-72 * time.Hour)

	upcoming, err := svc.Create(ctx, EventInput{Title: "Charity Run", StartsAt: soon, Capacity: 200})
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusUpcoming, upcoming.Status)

	_, err = svc.Create(ctx, EventInput{Title: "Gala", StartsAt: past, Status: models.EventStatusCompleted})
	require.NoError(t, err)

	before := soon.Add(-time.Hour)
	_, err = svc.Create(ctx, EventInput{Title: "Backwards", StartsAt: soon, EndsAt: &before})
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = svc.Create(ctx, EventInput{StartsAt: soon})
	var ve validation.ValidationError
	assert.ErrorAs(t, err, &ve)

	only, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, "Charity Run", only[0].Title)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	cancelled := models.EventStatusCancelled
	updated, err := svc.Update(ctx, upcoming.ID, EventPatch{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusCancelled, updated.Status)

	_, err = svc.Update(ctx, upcoming.ID, EventPatch{EndsAt: &before})
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = svc.Update(ctx, upcoming.ID, EventPatch{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	require.NoError(t, svc.Delete(ctx, upcoming.ID))
	_, err = svc.Get(ctx, upcoming.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestVolunteerService(t *testing.T) {
	db := repotest.NewDB(t)
	svc := NewVolunteerService(repositories.NewVolunteerRepository(db))
	ctx := context.Background()

	volunteer, err := svc.Apply(ctx, VolunteerInput{Name: "Kiran", Email: "Kiran@Example.org", Skills: "teaching"})
	require.NoError(t, err)
	assert.Equal(t, models.VolunteerStatusPending, volunteer.Status)
	assert.Equal(t, "kiran@example.org", volunteer.Email)

	_, err = svc.SetStatus(ctx, volunteer.ID, "maybe")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	approved, err := svc.SetStatus(ctx, volunteer.ID, models.VolunteerStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.VolunteerStatusApproved, approved.Status)

	pending, err := svc.List(ctx, models.VolunteerStatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = svc.SetStatus(ctx, 404, models.VolunteerStatusRejected)
	assert.ErrorIs(t, err, ErrVolunteerNotFound)
}

func TestContactService(t *testing.T) {
	db := repotest.NewDB(t)
	svc := NewContactService(repositories.NewContactRepository(db))
	ctx := context.Background()

	contact, err := svc.Submit(ctx, ContactInput{Name: "Lee", Email: "lee@example.org", Subject: "CSR", Message: "Let's talk"})
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusNew, contact.Status)

	_, err = svc.Submit(ctx, ContactInput{Name: "Lee", Email: "lee@example.org", Subject: "CSR"})
	var ve validation.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "message", ve.Field)

	replied, err := svc.SetStatus(ctx, contact.ID, models.ContactStatusReplied)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusReplied, replied.Status)

	_, err = svc.List(ctx, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNewsletterService(t *testing.T) {
	db := repotest.NewDB(t)
	svc := NewNewsletterService(repositories.NewSubscriberRepository(db))
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, SubscribeInput{Email: "Reader@Example.org"})
	require.NoError(t, err)
	assert.True(t, sub.Active)
	assert.Len(t, sub.UnsubscribeToken, 36)

	again, err := svc.Subscribe(ctx, SubscribeInput{Email: "reader@example.org"})
	require.NoError(t, err)
	assert.Equal(t, sub.ID, again.ID)

	require.NoError(t, svc.Unsubscribe(ctx, sub.UnsubscribeToken))
	active, err := svc.Subscribers(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	assert.ErrorIs(t, svc.Unsubscribe(ctx, "not-a-token"), ErrSubscriberNotFound)

	back, err := svc.Subscribe(ctx, SubscribeInput{Email: "reader@example.org"})
	require.NoError(t, err)
	assert.True(t, back.Active)
	assert.Equal(t, sub.UnsubscribeToken, back.UnsubscribeToken)

	all, err := svc.Subscribers(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
