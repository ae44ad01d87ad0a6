package models

import (
	"time"

	"gorm.io/gorm"
)

// Event statuses
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

type Event struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Location    string         `gorm:"size:200" json:"location"`
	StartsAt    time.Time      `gorm:"not null;index" json:"starts_at"`
	EndsAt      *time.Time     `json:"ends_at,omitempty"`
	ImageURL    string         `gorm:"size:500" json:"image_url"`
	Capacity    int            `gorm:"not null;default:0" json:"capacity"`
	Status      string         `gorm:"size:20;not null;default:'upcoming'" json:"status"`
	ProjectID   *uint          `gorm:"index" json:"project_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Volunteer statuses
const (
	VolunteerStatusPending  = "pending"
	VolunteerStatusApproved = "approved"
	VolunteerStatusRejected = "rejected"
)

type Volunteer struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"size:120;not null" json:"name"`
	Email        string    `gorm:"size:160;not null;index" json:"email"`
	Phone        string    `gorm:"size:20" json:"phone"`
	Skills       string    `gorm:"type:text" json:"skills"`
	Availability string    `gorm:"size:120" json:"availability"`
	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Contact statuses
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

type Contact struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:160;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone,omitempty"`
	Subject   string    `gorm:"size:200;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;not null;default:'new';index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subscriber is a newsletter subscription. Unsubscribing flips Active
// instead of deleting the row so a later resubscribe keeps its history.
type Subscriber struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	Email            string    `gorm:"size:160;uniqueIndex;not null" json:"email"`
	Name             string    `gorm:"size:120" json:"name,omitempty"`
	Active           bool      `gorm:"not null;default:true" json:"active"`
	UnsubscribeToken string    `gorm:"size:36;uniqueIndex;not null" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
