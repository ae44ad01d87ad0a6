package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"charity/internal/models"
	"charity/internal/services/donation"
	"charity/internal/services/payment"
	"charity/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDonationService struct {
	mock.Mock
}

func (m *mockDonationService) Create(ctx context.Context, input donation.CreateInput) (*models.Donation, payment.Order, error) {
	args := m.Called(input)
	d, _ := args.Get(0).(*models.Donation)
	o, _ := args.Get(1).(payment.Order)
	return d, o, args.Error(2)
}

func (m *mockDonationService) VerifyPayment(ctx context.Context, input donation.VerifyInput) (*models.Donation, error) {
	args := m.Called(input)
	d, _ := args.Get(0).(*models.Donation)
	return d, args.Error(1)
}

func (m *mockDonationService) List(ctx context.Context, filter models.DonationFilter) ([]models.Donation, error) {
	args := m.Called(filter)
	d, _ := args.Get(0).([]models.Donation)
	return d, args.Error(1)
}

func (m *mockDonationService) ListAdmin(ctx context.Context, filter models.DonationFilter) ([]models.Donation, error) {
	args := m.Called(filter)
	d, _ := args.Get(0).([]models.Donation)
	return d, args.Error(1)
}

func (m *mockDonationService) ListByEmail(ctx context.Context, email string) ([]models.Donation, error) {
	args := m.Called(email)
	d, _ := args.Get(0).([]models.Donation)
	return d, args.Error(1)
}

func (m *mockDonationService) Get(ctx context.Context, id uint) (*models.Donation, error) {
	args := m.Called(id)
	d, _ := args.Get(0).(*models.Donation)
	return d, args.Error(1)
}

func (m *mockDonationService) AdminUpdate(ctx context.Context, id uint, patch donation.AdminPatch) (*models.Donation, error) {
	args := m.Called(id, patch)
	d, _ := args.Get(0).(*models.Donation)
	return d, args.Error(1)
}

func newDonationApp(svc donation.Service) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	h := NewDonationHandler(svc)
	app.Post("/api/donations", h.CreateDonation)
	app.Post("/api/donations/verify-payment", h.VerifyPayment)
	app.Get("/api/donations", h.ListDonations)
	app.Get("/api/donations/:id/receipt", h.Receipt)
	app.Get("/api/donations/:id", h.GetDonation)
	app.Put("/api/donations/:id", h.UpdateDonation)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]interface{}{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func pendingDonation() *models.Donation {
	orderID := "order_1"
	return &models.Donation{
		ID:              1,
		TransactionID:   "TXN1718000000000ABCDEFGHI",
		Amount:          decimal.NewFromInt(1000),
		DonationType:    models.DonationTypeOneTime,
		DonorName:       "A",
		DonorEmail:      "a@x.com",
		PaymentMethod:   models.PaymentMethodRazorpay,
		Status:          models.DonationStatusPending,
		RazorpayOrderID: &orderID,
	}
}

func TestCreateDonation(t *testing.T) {
	svc := new(mockDonationService)
	svc.On("Create", mock.MatchedBy(func(in donation.CreateInput) bool {
		return in.Amount.Equal(decimal.NewFromInt(1000)) && in.DonorEmail == "a@x.com"
	})).Return(pendingDonation(), payment.Order{"id": "order_1", "amount": float64(100000), "currency": "INR"}, nil)

	status, body := call(t, newDonationApp(svc), http.MethodPost, "/api/donations",
		`{"amount":1000,"donor_name":"A","donor_email":"a@x.com"}`)
	assert.Equal(t, fiber.StatusCreated, status)

	d := body["donation"].(map[string]interface{})
	assert.Equal(t, "pending", d["status"])
	assert.Equal(t, "razorpay", d["payment_method"])
	assert.Equal(t, float64(1000), d["amount"])

	order := body["order"].(map[string]interface{})
	assert.Equal(t, "order_1", order["id"])
	assert.Equal(t, "INR", order["currency"])
}

func TestCreateDonation_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"unconfigured", payment.ErrGatewayUnconfigured, fiber.StatusInternalServerError, "payment gateway not configured"},
		{"gateway rejected", &payment.GatewayOrderError{Description: "Authentication failed"}, fiber.StatusInternalServerError, "failed to create payment order: Authentication failed"},
		{"validation", validation.ValidationError{Field: "donor_email", Message: "must be a valid email address"}, fiber.StatusBadRequest, "donor_email: must be a valid email address"},
		{"project", donation.ErrProjectNotFound, fiber.StatusNotFound, "project not found"},
		{"unexpected", assert.AnError, fiber.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockDonationService)
			svc.On("Create", mock.Anything).Return(nil, nil, tc.err)

			status, body := call(t, newDonationApp(svc), http.MethodPost, "/api/donations", `{"amount":10,"donor_name":"A","donor_email":"a@x.com"}`)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.msg, body["error"])
		})
	}
}

func TestCreateDonation_MalformedBody(t *testing.T) {
	svc := new(mockDonationService)
	status, body := call(t, newDonationApp(svc), http.MethodPost, "/api/donations", `{"amount":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", body["error"])
	svc.AssertNotCalled(t, "Create", mock.Anything)
}

func TestVerifyPayment(t *testing.T) {
	completed := pendingDonation()
	completed.Status = models.DonationStatusCompleted

	svc := new(mockDonationService)
	svc.On("VerifyPayment", donation.VerifyInput{OrderID: "order_1", PaymentID: "pay_1", Signature: "good"}).Return(completed, nil)
	svc.On("VerifyPayment", donation.VerifyInput{OrderID: "order_1", PaymentID: "pay_1", Signature: "bad"}).Return(nil, donation.ErrVerificationFailed)
	svc.On("VerifyPayment", donation.VerifyInput{OrderID: "order_2", PaymentID: "pay_2", Signature: "good"}).Return(nil, donation.ErrDonationNotFound)
	svc.On("VerifyPayment", donation.VerifyInput{OrderID: "order_3", PaymentID: "pay_3", Signature: "good"}).Return(nil, donation.ErrDonationNotPending)
	app := newDonationApp(svc)

	status, body := call(t, app, http.MethodPost, "/api/donations/verify-payment",
		`{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"good"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "completed", body["donation"].(map[string]interface{})["status"])

	status, body = call(t, app, http.MethodPost, "/api/donations/verify-payment",
		`{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"bad"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "payment verification failed", body["error"])

	status, _ = call(t, app, http.MethodPost, "/api/donations/verify-payment",
		`{"razorpay_order_id":"order_2","razorpay_payment_id":"pay_2","razorpay_signature":"good"}`)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = call(t, app, http.MethodPost, "/api/donations/verify-payment",
		`{"razorpay_order_id":"order_3","razorpay_payment_id":"pay_3","razorpay_signature":"good"}`)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestListDonations_QueryFilters(t *testing.T) {
	projectID := uint(4)
	svc := new(mockDonationService)
	svc.On("List", models.DonationFilter{Status: "completed", ProjectID: &projectID}).Return([]models.Donation{*pendingDonation()}, nil)
	app := newDonationApp(svc)

	status, body := call(t, app, http.MethodGet, "/api/donations?status=completed&project_id=4", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, _ = call(t, app, http.MethodGet, "/api/donations?project_id=abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetAndUpdateDonation(t *testing.T) {
	failed := models.DonationStatusFailed
	updated := pendingDonation()
	updated.Status = failed

	svc := new(mockDonationService)
	svc.On("Get", uint(1)).Return(pendingDonation(), nil)
	svc.On("Get", uint(2)).Return(nil, donation.ErrDonationNotFound)
	svc.On("AdminUpdate", uint(1), donation.AdminPatch{Status: &failed}).Return(updated, nil)
	pending := models.DonationStatusPending
	svc.On("AdminUpdate", uint(3), donation.AdminPatch{Status: &pending}).Return(nil, donation.ErrPaymentRecorded)
	app := newDonationApp(svc)

	status, _ := call(t, app, http.MethodGet, "/api/donations/1", "")
	assert.Equal(t, fiber.StatusOK, status)

	status, body := call(t, app, http.MethodGet, "/api/donations/2", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "donation not found", body["error"])

	status, _ = call(t, app, http.MethodGet, "/api/donations/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = call(t, app, http.MethodPut, "/api/donations/1", `{"status":"failed","razorpay_order_id":"hijack"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "failed", body["data"].(map[string]interface{})["status"])

	status, body = call(t, app, http.MethodPut, "/api/donations/3", `{"status":"pending"}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, donation.ErrPaymentRecorded.Error(), body["error"])

	status, _ = call(t, app, http.MethodGet, "/api/donations/1/receipt", "")
	assert.Equal(t, fiber.StatusNotImplemented, status)
}
