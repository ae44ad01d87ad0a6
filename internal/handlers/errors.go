package handlers

import (
	"errors"
	"log"
	"strconv"

	"charity/internal/repositories"
	"charity/internal/services/auth"
	"charity/internal/services/donation"
	"charity/internal/services/outreach"
	"charity/internal/services/payment"
	"charity/internal/services/project"
	"charity/internal/utils/response"
	"charity/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
)

var errInvalidID = errors.New("invalid id")

// statusFor maps service errors to an HTTP status and the message shown to
// the client. Unknown errors become a generic 500.
func statusFor(err error) (int, string) {
	var ve validation.ValidationError
	var orderErr *payment.GatewayOrderError

	switch {
	case errors.As(err, &ve):
		return fiber.StatusBadRequest, ve.Error()
	case errors.As(err, &orderErr):
		return fiber.StatusInternalServerError, orderErr.Error()
	case errors.Is(err, payment.ErrGatewayUnconfigured):
		return fiber.StatusInternalServerError, err.Error()

	case errors.Is(err, donation.ErrVerificationFailed),
		errors.Is(err, donation.ErrInvalidAmount),
		errors.Is(err, donation.ErrInvalidStatus),
		errors.Is(err, donation.ErrEmptyUpdate),
		errors.Is(err, project.ErrInvalidStatus),
		errors.Is(err, project.ErrInvalidGoal),
		errors.Is(err, project.ErrEmptyUpdate),
		errors.Is(err, outreach.ErrInvalidStatus),
		errors.Is(err, outreach.ErrInvalidSchedule),
		errors.Is(err, outreach.ErrEmptyUpdate),
		errors.Is(err, errInvalidID):
		return fiber.StatusBadRequest, err.Error()

	case errors.Is(err, auth.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid email or password"

	case errors.Is(err, repositories.ErrDonationNotFound),
		errors.Is(err, repositories.ErrProjectNotFound),
		errors.Is(err, repositories.ErrEventNotFound),
		errors.Is(err, repositories.ErrVolunteerNotFound),
		errors.Is(err, repositories.ErrContactNotFound),
		errors.Is(err, repositories.ErrSubscriberNotFound),
		errors.Is(err, repositories.ErrUserNotFound):
		return fiber.StatusNotFound, err.Error()

	case errors.Is(err, donation.ErrDonationNotPending),
		errors.Is(err, donation.ErrPaymentRecorded),
		errors.Is(err, repositories.ErrSlugTaken),
		errors.Is(err, repositories.ErrEmailTaken):
		return fiber.StatusConflict, err.Error()
	}
	return fiber.StatusInternalServerError, "Internal server error"
}

func respondError(c *fiber.Ctx, err error) error {
	status, message := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("[%s %s] %v", c.Method(), c.Path(), err)
	}
	return response.Error(c, status, message)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// ErrorHandler is the fiber catch-all for errors no handler answered.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return response.Error(c, fe.Code, fe.Message)
	}
	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return response.ServerError(c, "Internal server error")
}
