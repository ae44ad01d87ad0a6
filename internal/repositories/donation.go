package repositories

import (
	"context"
	"errors"
	"log"

	"charity/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DonationRepository defines the persistence operations on donations.
type DonationRepository interface {
	Create(ctx context.Context, donation *models.Donation) error
	FindByID(ctx context.Context, id uint) (*models.Donation, error)
	List(ctx context.Context, filter models.DonationFilter) ([]models.Donation, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*models.Donation, error)

	// CompletePayment marks the pending donation for orderID completed and
	// credits its project, both in one transaction. applied is false when the
	// donation was no longer pending or already carries a payment id, in which
	// case nothing was written.
	CompletePayment(ctx context.Context, orderID, paymentID, signature string) (donation *models.Donation, applied bool, err error)
}

type donationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, donation *models.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) FindByID(ctx context.Context, id uint) (*models.Donation, error) {
	var donation models.Donation
	err := r.db.WithContext(ctx).Preload("Project").First(&donation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) List(ctx context.Context, filter models.DonationFilter) ([]models.Donation, error) {
	query := r.db.WithContext(ctx).Model(&models.Donation{}).Preload("Project")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.DonorEmail != "" {
		query = query.Where("donor_email = ?", filter.DonorEmail)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	donations := make([]models.Donation, 0)
	err := query.Order("created_at DESC").Order("id DESC").Find(&donations).Error
	return donations, err
}

func (r *donationRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*models.Donation, error) {
	result := r.db.WithContext(ctx).Model(&models.Donation{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrDonationNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *donationRepository) CompletePayment(ctx context.Context, orderID, paymentID, signature string) (*models.Donation, bool, error) {
	var donation models.Donation
	applied := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The guard makes the transition happen at most once even when two
		// verifications race, or a paid donation was set back to pending.
		result := tx.Model(&models.Donation{}).
			Where("razorpay_order_id = ? AND status = ? AND razorpay_payment_id IS NULL", orderID, models.DonationStatusPending).
			Updates(map[string]interface{}{
				"razorpay_payment_id": paymentID,
				"razorpay_signature":  signature,
				"status":              models.DonationStatusCompleted,
			})
		if result.Error != nil {
			return result.Error
		}

		if err := tx.Where("razorpay_order_id = ?", orderID).First(&donation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDonationNotFound
			}
			return err
		}

		if result.RowsAffected == 0 {
			return nil
		}
		applied = true

		if donation.ProjectID == nil {
			return nil
		}
		credited, err := incrementRaised(tx, *donation.ProjectID, donation.Amount)
		if err != nil {
			return err
		}
		if !credited {
			log.Printf("[donations] project %d for order %s no longer exists, total not credited", *donation.ProjectID, orderID)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &donation, applied, nil
}

// incrementRaised adds amount to a project's amount_raised in SQL so that
// concurrent credits never overwrite each other.
func incrementRaised(tx *gorm.DB, projectID uint, amount decimal.Decimal) (bool, error) {
	result := tx.Model(&models.Project{}).
		Where("id = ?", projectID).
		UpdateColumn("amount_raised", gorm.Expr("amount_raised + ?", amount))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
