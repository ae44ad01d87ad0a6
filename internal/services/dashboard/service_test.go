package dashboard

import (
	"context"
	"testing"
	"time"

	"charity/internal/models"
	"charity/internal/repositories"
	"charity/internal/repositories/repotest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestStats(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()

	project := &models.Project{Title: "Wells", Slug: "wells", Status: models.ProjectStatusActive}
	require.NoError(t, db.Create(project).Error)

	donations := []models.Donation{
		{TransactionID: "TXN1", Amount: decimal.NewFromInt(100), DonationType: models.DonationTypeOneTime, DonorName: "A", DonorEmail: "a@x.com", PaymentMethod: "razorpay", Status: models.DonationStatusCompleted, RazorpayOrderID: strPtr("o1"), ProjectID: &project.ID},
		{TransactionID: "TXN2", Amount: decimal.RequireFromString("50.25"), DonationType: models.DonationTypeOneTime, DonorName: "A", DonorEmail: "a@x.com", PaymentMethod: "razorpay", Status: models.DonationStatusCompleted, RazorpayOrderID: strPtr("o2")},
		{TransactionID: "TXN3", Amount: decimal.NewFromInt(999), DonationType: models.DonationTypeOneTime, DonorName: "B", DonorEmail: "b@x.com", PaymentMethod: "razorpay", Status: models.DonationStatusPending, RazorpayOrderID: strPtr("o3")},
	}
	require.NoError(t, db.Create(&donations).Error)

	require.NoError(t, db.Create(&models.Event{Title: "Run", StartsAt: time.Now().Add(48 * time.Hour), Status: models.EventStatusUpcoming}).Error)
	require.NoError(t, db.Create(&models.Event{Title: "Past", StartsAt: time.Now().Add(-48 * time.Hour), Status: models.EventStatusCompleted}).Error)
	require.NoError(t, db.Create(&models.Volunteer{Name: "V", Email: "v@x.com", Status: models.VolunteerStatusPending}).Error)
	require.NoError(t, db.Create(&models.Contact{Name: "C", Email: "c@x.com", Subject: "Hi", Message: "Hello", Status: models.ContactStatusNew}).Error)

	stats, err := NewService(repositories.NewDashboardRepository(db), nil).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalDonations)
	assert.Equal(t, int64(2), stats.CompletedDonations)
	assert.Equal(t, int64(1), stats.PendingDonations)
	assert.Equal(t, int64(1), stats.UniqueDonors)
	assert.True(t, stats.TotalRaised.Equal(decimal.RequireFromString("150.25")), "got %s", stats.TotalRaised)
	assert.Equal(t, int64(1), stats.ActiveProjects)
	assert.Equal(t, int64(1), stats.UpcomingEvents)
	assert.Equal(t, int64(1), stats.PendingVolunteers)
	assert.Equal(t, int64(1), stats.NewContacts)
	assert.Len(t, stats.RecentDonations, 3)
	assert.Len(t, stats.TopProjects, 1)
}

func TestStats_ServedFromCache(t *testing.T) {
	db := repotest.NewDB(t)
	cacheSvc, mr := repotest.NewCache(t)
	ctx := context.Background()
	svc := NewService(repositories.NewDashboardRepository(db), cacheSvc)

	first, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, first.TotalDonations)
	assert.True(t, mr.Exists("dashboard:stats"))

	require.NoError(t, db.Create(&models.Donation{TransactionID: "TXN9", Amount: decimal.NewFromInt(10), DonationType: models.DonationTypeOneTime, DonorName: "Z", DonorEmail: "z@x.com", PaymentMethod: "razorpay", Status: models.DonationStatusPending, RazorpayOrderID: strPtr("o9")}).Error)

	cached, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, cached.TotalDonations)

	require.NoError(t, cacheSvc.InvalidateDashboard(ctx))
	fresh, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh.TotalDonations)
}
