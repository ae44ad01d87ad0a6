package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Project statuses
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusPaused    = "paused"
)

// Project is a fundraising cause donations can be attached to.
// AmountRaised only ever moves through an atomic SQL increment.
type Project struct {
	ID           uint            `gorm:"primarykey" json:"id"`
	Title        string          `gorm:"size:200;not null" json:"title"`
	Slug         string          `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	Description  string          `gorm:"type:text" json:"description"`
	Category     string          `gorm:"size:60;index" json:"category"`
	Location     string          `gorm:"size:160" json:"location"`
	ImageURL     string          `gorm:"size:500" json:"image_url"`
	GoalAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"goal_amount"`
	AmountRaised decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"amount_raised"`
	Status       string          `gorm:"size:20;not null;default:'active';index" json:"status"`
	IsFeatured   bool            `gorm:"not null;default:false" json:"is_featured"`
	StartDate    *time.Time      `json:"start_date,omitempty"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	Status   string
	Category string
	Featured *bool
}

// IsValidProjectStatus reports whether s is a known project status.
func IsValidProjectStatus(s string) bool {
	return s == ProjectStatusActive || s == ProjectStatusCompleted || s == ProjectStatusPaused
}
