package repositories

import (
	"context"
	"fmt"
	"time"

	"charity/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardRepository interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db, now: time.Now}
}

func (r *dashboardRepository) Stats(ctx context.Context) (*models.DashboardStats, error) {
	db := r.db.WithContext(ctx)
	stats := &models.DashboardStats{}

	counts := []struct {
		name  string
		dest  *int64
		query *gorm.DB
	}{
		{"total donations", &stats.TotalDonations, db.Model(&models.Donation{})},
		{"completed donations", &stats.CompletedDonations, db.Model(&models.Donation{}).Where("status = ?", models.DonationStatusCompleted)},
		{"pending donations", &stats.PendingDonations, db.Model(&models.Donation{}).Where("status = ?", models.DonationStatusPending)},
		{"unique donors", &stats.UniqueDonors, db.Model(&models.Donation{}).Where("status = ?", models.DonationStatusCompleted).Distinct("donor_email")},
		{"active projects", &stats.ActiveProjects, db.Model(&models.Project{}).Where("status = ?", models.ProjectStatusActive)},
		{"upcoming events", &stats.UpcomingEvents, db.Model(&models.Event{}).Where("starts_at >= ? AND status <> ?", r.now(), models.EventStatusCancelled)},
		{"pending volunteers", &stats.PendingVolunteers, db.Model(&models.Volunteer{}).Where("status = ?", models.VolunteerStatusPending)},
		{"new contacts", &stats.NewContacts, db.Model(&models.Contact{}).Where("status = ?", models.ContactStatusNew)},
		{"active subscribers", &stats.ActiveSubscribers, db.Model(&models.Subscriber{}).Where("active = ?", true)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
	}

	var raised decimal.NullDecimal
	err := db.Model(&models.Donation{}).
		Where("status = ?", models.DonationStatusCompleted).
		Select("SUM(amount)").
		Row().Scan(&raised)
	if err != nil {
		return nil, fmt.Errorf("failed to sum donations: %w", err)
	}
	stats.TotalRaised = decimal.Zero
	if raised.Valid {
		stats.TotalRaised = raised.Decimal
	}

	stats.RecentDonations = make([]models.Donation, 0)
	err = db.Preload("Project").
		Order("created_at DESC").Order("id DESC").
		Limit(10).
		Find(&stats.RecentDonations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent donations: %w", err)
	}

	stats.TopProjects = make([]models.Project, 0)
	err = db.Order("amount_raised DESC").Limit(5).Find(&stats.TopProjects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top projects: %w", err)
	}

	return stats, nil
}
