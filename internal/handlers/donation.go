package handlers

import (
	"strconv"

	"charity/internal/models"
	"charity/internal/services/donation"
	"charity/internal/utils"
	"charity/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type DonationHandler struct {
	donationService donation.Service
}

func NewDonationHandler(donationService donation.Service) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

// CreateDonation starts a donation and returns the gateway order the
// checkout widget needs.
func (h *DonationHandler) CreateDonation(c *fiber.Ctx) error {
	var input donation.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	d, order, err := h.donationService.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Donation created",
		"donation": d,
		"order":    order,
	})
}

// VerifyPayment completes a donation from the checkout callback fields.
func (h *DonationHandler) VerifyPayment(c *fiber.Ctx) error {
	var input donation.VerifyInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	d, err := h.donationService.VerifyPayment(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Payment verified successfully",
		"donation": d,
	})
}

func (h *DonationHandler) ListDonations(c *fiber.Ctx) error {
	filter, err := donationFilter(c)
	if err != nil {
		return respondError(c, err)
	}

	donations, err := h.donationService.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Donations retrieved", donations)
}

func (h *DonationHandler) ListAllDonations(c *fiber.Ctx) error {
	filter, err := donationFilter(c)
	if err != nil {
		return respondError(c, err)
	}

	donations, err := h.donationService.ListAdmin(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Donations retrieved", donations)
}

func (h *DonationHandler) MyDonations(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	donations, err := h.donationService.ListByEmail(c.UserContext(), claims.Email)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Donations retrieved", donations)
}

func (h *DonationHandler) GetDonation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	d, err := h.donationService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Donation retrieved", d)
}

// UpdateDonation lets an admin correct the status or message of a donation.
func (h *DonationHandler) UpdateDonation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	var patch donation.AdminPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	d, err := h.donationService.AdminUpdate(c.UserContext(), id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Donation updated", d)
}

func (h *DonationHandler) Receipt(c *fiber.Ctx) error {
	return response.Error(c, fiber.StatusNotImplemented, "Receipt generation is not available yet")
}

func (h *DonationHandler) TaxCertificate(c *fiber.Ctx) error {
	return response.Error(c, fiber.StatusNotImplemented, "Tax certificate generation is not available yet")
}

func donationFilter(c *fiber.Ctx) (models.DonationFilter, error) {
	filter := models.DonationFilter{Status: c.Query("status")}
	if raw := c.Query("project_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, errInvalidID
		}
		projectID := uint(id)
		filter.ProjectID = &projectID
	}
	return filter, nil
}
