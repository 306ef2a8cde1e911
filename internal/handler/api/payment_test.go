//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"wayfare/internal/handler/api"
	"wayfare/internal/pkg/errs"
	"wayfare/internal/usecase/commands"
	"wayfare/internal/usecase/shared"
	"wayfare/tests/common/httptest"
	commandsmock "wayfare/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	handler      *api.PaymentHandler

	userID uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands)

	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/payments/intent", authMiddleware, s.handler.CreateIntent)
	s.router.GET("/payments/intent/:id", authMiddleware, s.handler.GetIntent)
	s.router.POST("/payments/refund", authMiddleware, s.handler.Refund)
	s.router.POST("/webhooks/stripe", s.handler.Webhook)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

// ================================================================================
// TestCreateIntent
// ================================================================================

func (s *PaymentHandlerTestSuite) TestCreateIntent() {
	bookingID := uuid.New()
	url := "/payments/intent"
	reqBody := map[string]any{"bookingId": bookingID.String()}

	s.Run("success: returns 201 with the client secret", func() {
		s.mockCommands.EXPECT().CreateIntent(gomock.Any(), bookingID, s.userID).
			Return(&shared.PaymentIntent{
				ID:           "pi_123",
				ClientSecret: "pi_123_secret",
				Amount:       46000,
				Currency:     "usd",
				Status:       "requires_payment_method",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			PaymentIntentID string `json:"paymentIntentId"`
			ClientSecret    string `json:"clientSecret"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("pi_123", body.PaymentIntentID)
		s.Equal("pi_123_secret", body.ClientSecret)
	})

	s.Run("error: 404 for someone else's booking", func() {
		s.mockCommands.EXPECT().CreateIntent(gomock.Any(), bookingID, s.userID).
			Return(nil, commands.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 when bookingId is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGetIntent
// ================================================================================

func (s *PaymentHandlerTestSuite) TestGetIntent() {
	bookingID := uuid.New()
	url := "/payments/intent/" + bookingID.String()

	s.Run("success: returns the intent", func() {
		s.mockCommands.EXPECT().GetIntent(gomock.Any(), bookingID, s.userID).
			Return(&shared.PaymentIntent{ID: "pi_123", Status: "succeeded"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			PaymentIntentID string `json:"paymentIntentId"`
			Status          string `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("succeeded", body.Status)
	})

	s.Run("error: 400 when the booking has no payment", func() {
		s.mockCommands.EXPECT().GetIntent(gomock.Any(), bookingID, s.userID).
			Return(nil, commands.ErrNoPaymentOnBooking)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Booking has no payment")
	})
}

// ================================================================================
// TestRefund
// ================================================================================

func (s *PaymentHandlerTestSuite) TestRefund() {
	bookingID := uuid.New()
	url := "/payments/refund"
	reqBody := map[string]any{"bookingId": bookingID.String()}

	s.Run("success: refunds the booking", func() {
		s.mockCommands.EXPECT().Refund(gomock.Any(), bookingID).
			Return(&shared.RefundResult{ID: "re_1", Amount: 46000, Status: "succeeded"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			RefundID string `json:"refundId"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("re_1", body.RefundID)
	})

	s.Run("error: 400 when the booking is not paid", func() {
		s.mockCommands.EXPECT().Refund(gomock.Any(), bookingID).
			Return(nil, commands.ErrBookingNotPaid)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Booking is not paid")
	})
}

// ================================================================================
// TestWebhook
// ================================================================================

func (s *PaymentHandlerTestSuite) TestWebhook() {
	url := "/webhooks/stripe"
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)

	s.Run("success: acknowledges the event", func() {
		s.mockCommands.EXPECT().
			HandleWebhook(gomock.Any(), payload, "t=1,v1=abc").
			Return(nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": "t=1,v1=abc"})

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body["received"])
	})

	s.Run("error: 400 on a bad signature", func() {
		s.mockCommands.EXPECT().
			HandleWebhook(gomock.Any(), payload, "t=1,v1=bad").
			Return(errs.Mark(errs.New("signature mismatch"), commands.ErrInvalidWebhook))

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": "t=1,v1=bad"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook signature")
	})

	s.Run("error: 500 when applying the event fails", func() {
		s.mockCommands.EXPECT().
			HandleWebhook(gomock.Any(), payload, gomock.Any()).
			Return(errs.New("connection refused"))

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": "t=1,v1=abc"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
