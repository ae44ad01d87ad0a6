package models

import "github.com/shopspring/decimal"

// DashboardStats is the admin overview returned by /api/admin/dashboard.
type DashboardStats struct {
	TotalDonations     int64           `json:"total_donations"`
	CompletedDonations int64           `json:"completed_donations"`
	PendingDonations   int64           `json:"pending_donations"`
	TotalRaised        decimal.Decimal `json:"total_raised"`
	UniqueDonors       int64           `json:"unique_donors"`
	ActiveProjects     int64           `json:"active_projects"`
	UpcomingEvents     int64           `json:"upcoming_events"`
	PendingVolunteers  int64           `json:"pending_volunteers"`
	NewContacts        int64           `json:"new_contacts"`
	ActiveSubscribers  int64           `json:"active_subscribers"`
	RecentDonations    []Donation      `json:"recent_donations"`
	TopProjects        []Project       `json:"top_projects"`
}
