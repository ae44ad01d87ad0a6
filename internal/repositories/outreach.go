package repositories

import (
	"context"
	"errors"
	"time"

	"charity/internal/models"

	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	List(ctx context.Context, upcomingOnly bool) ([]models.Event, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*models.Event, error)
	Delete(ctx context.Context, id uint) error
}

type eventRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db, now: time.Now}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context, upcomingOnly bool) ([]models.Event, error) {
	query := r.db.WithContext(ctx).Model(&models.Event{})
	if upcomingOnly {
		query = query.Where("starts_at >= ? AND status <> ?", r.now(), models.EventStatusCancelled).
			Order("starts_at ASC")
	} else {
		query = query.Order("starts_at DESC")
	}

	events := make([]models.Event, 0)
	err := query.Find(&events).Error
	return events, err
}

func (r *eventRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*models.Event, error) {
	result := r.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEventNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *models.Volunteer) error
	List(ctx context.Context, status string) ([]models.Volunteer, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*models.Volunteer, error)
}

type volunteerRepository struct {
	db *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{db: db}
}

func (r *volunteerRepository) Create(ctx context.Context, volunteer *models.Volunteer) error {
	return r.db.WithContext(ctx).Create(volunteer).Error
}

func (r *volunteerRepository) List(ctx context.Context, status string) ([]models.Volunteer, error) {
	query := r.db.WithContext(ctx).Model(&models.Volunteer{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	volunteers := make([]models.Volunteer, 0)
	err := query.Order("created_at DESC").Find(&volunteers).Error
	return volunteers, err
}

func (r *volunteerRepository) UpdateStatus(ctx context.Context, id uint, status string) (*models.Volunteer, error) {
	result := r.db.WithContext(ctx).Model(&models.Volunteer{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrVolunteerNotFound
	}
	var volunteer models.Volunteer
	if err := r.db.WithContext(ctx).First(&volunteer, id).Error; err != nil {
		return nil, err
	}
	return &volunteer, nil
}

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context, status string) ([]models.Contact, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*models.Contact, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) List(ctx context.Context, status string) ([]models.Contact, error) {
	query := r.db.WithContext(ctx).Model(&models.Contact{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	contacts := make([]models.Contact, 0)
	err := query.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id uint, status string) (*models.Contact, error) {
	result := r.db.WithContext(ctx).Model(&models.Contact{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrContactNotFound
	}
	var contact models.Contact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

type SubscriberRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	Create(ctx context.Context, subscriber *models.Subscriber) error
	SetActive(ctx context.Context, id uint, active bool) error
	DeactivateByToken(ctx context.Context, token string) error
	List(ctx context.Context, activeOnly bool) ([]models.Subscriber, error)
}

type subscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) FindByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriberNotFound
		}
		return nil, err
	}
	return &subscriber, nil
}

func (r *subscriberRepository) Create(ctx context.Context, subscriber *models.Subscriber) error {
	return r.db.WithContext(ctx).Create(subscriber).Error
}

func (r *subscriberRepository) SetActive(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).Model(&models.Subscriber{}).Where("id = ?", id).Update("active", active).Error
}

func (r *subscriberRepository) DeactivateByToken(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Model(&models.Subscriber{}).
		Where("unsubscribe_token = ?", token).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriberNotFound
	}
	return nil
}

func (r *subscriberRepository) List(ctx context.Context, activeOnly bool) ([]models.Subscriber, error) {
	query := r.db.WithContext(ctx).Model(&models.Subscriber{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	subscribers := make([]models.Subscriber, 0)
	err := query.Order("created_at DESC").Find(&subscribers).Error
	return subscribers, err
}
