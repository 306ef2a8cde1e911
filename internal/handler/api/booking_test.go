//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"wayfare/internal/domain/booking"
	"wayfare/internal/domain/pricing"
	"wayfare/internal/domain/user"
	"wayfare/internal/handler/api"
	"wayfare/internal/pkg/errs"
	"wayfare/internal/usecase/commands"
	"wayfare/internal/usecase/queries"
	"wayfare/tests/common/builder"
	"wayfare/tests/common/httptest"
	"wayfare/tests/common/testutil"
	commandsmock "wayfare/tests/mock/commands"
	queriesmock "wayfare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockBookingCommands
	mockQueries      *queriesmock.MockBookingQueries
	mockAvailability *queriesmock.MockAvailabilityEngine
	handler          *api.BookingHandler

	userID uuid.UUID
	role   user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityEngine(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockAvailability)

	s.userID = uuid.New()
	s.role = user.RoleCustomer

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
		c.Next()
	}

	s.router.POST("/bookings/check-availability", authMiddleware, s.handler.CheckAvailability)
	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListMyBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.CancelBooking)
	s.router.PUT("/bookings/:id/status", authMiddleware, s.handler.UpdateStatus)
	s.router.PUT("/bookings/:id/payment", authMiddleware, s.handler.UpdatePaymentStatus)
	s.router.GET("/listings/:id/bookings", authMiddleware, s.handler.ListListingBookings)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func checkAvailabilityBody() map[string]any {
	return map[string]any{
		"listingId":      uuid.New().String(),
		"checkInDate":    "2025-07-01T15:00:00Z",
		"checkOutDate":   "2025-07-03T15:00:00Z",
		"numberOfGuests": 2,
	}
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	url := "/bookings/check-availability"

	s.Run("success: available with a quote", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), gomock.Any()).
			Return(queries.Availability{Available: true}, nil)
		s.mockAvailability.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(&pricing.Quote{Total: decimal.NewFromInt(460), Currency: "USD", Nights: 2, Guests: 2}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkAvailabilityBody(), "bearer-token")

		var body struct {
			Available bool           `json:"available"`
			Quote     *pricing.Quote `json:"quote"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Require().NotNil(body.Quote)
		s.True(body.Quote.Total.Equal(decimal.NewFromInt(460)))
	})

	s.Run("success: unavailable carries a reason and no quote", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), gomock.Any()).
			Return(queries.Availability{Available: false, Reason: "listing is not active"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkAvailabilityBody(), "bearer-token")

		var body struct {
			Available bool   `json:"available"`
			Reason    string `json:"reason"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Equal("listing is not active", body.Reason)
	})

	s.Run("error: 400 on validation errors", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("listingId", nil),
			testutil.Field("numberOfGuests", nil),
			testutil.Field("numberOfGuests", 0),
		} {
			body := checkAvailabilityBody()
			mutate(body)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkAvailabilityBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	body := map[string]any{
		"listingId":      uuid.New().String(),
		"checkInDate":    "2025-07-01T15:00:00Z",
		"checkOutDate":   "2025-07-03T15:00:00Z",
		"numberOfGuests": 2,
		"totalPrice":     "460.00",
	}

	s.Run("success: returns 201 Created", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var got queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(view.ID, got.ID)
	})

	s.Run("error: 400 when totalPrice is missing", func() {
		partial := map[string]any{}
		for k, v := range body {
			partial[k] = v
		}
		delete(partial, "totalPrice")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, partial, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 when not available", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("selected dates are not available"), commands.ErrNotAvailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not available")
	})

	s.Run("error: 422 on domain validation failure", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(booking.ErrInvalidStay, commands.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("connection refused"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: owner reads own booking", func() {
		view := builder.NewBookingBuilder().WithCustomer(s.userID).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		var got queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.ID, got.ID)
	})

	s.Run("error: someone else's booking reads as 404", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("success: admin reads any booking", func() {
		s.role = user.RoleAdmin
		defer func() { s.role = user.RoleCustomer }()

		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMyBookings() {
	s.Run("success: pages through own bookings", func() {
		views := []*queries.BookingView{builder.NewBookingBuilder().WithCustomer(s.userID).BuildView()}
		s.mockQueries.EXPECT().
			ListByCustomer(gomock.Any(), s.userID, queries.Page{Number: 2, Size: 10}).
			Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?page=2&size=10", nil, "bearer-token")

		var body struct {
			Bookings []*queries.BookingView `json:"bookings"`
			Page     int32                  `json:"page"`
			Size     int32                  `json:"size"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Bookings, 1)
		s.Equal(int32(2), body.Page)
	})
}

func (s *BookingHandlerTestSuite) TestListListingBookings() {
	listingID := uuid.New()
	url := "/listings/" + listingID.String() + "/bookings"

	s.Run("error: customers get 403", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("success: vendors see the listing's book", func() {
		s.role = user.RoleVendor
		defer func() { s.role = user.RoleCustomer }()

		s.mockQueries.EXPECT().
			ListByListing(gomock.Any(), listingID, gomock.Any()).
			Return([]*queries.BookingView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	view := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildView()
	url := "/bookings/" + view.ID.String() + "/status"

	s.Run("success: updates the status", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, "CONFIRMED").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "CONFIRMED"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 on an illegal transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, "PENDING").
			Return(nil, errs.Wrapf(booking.ErrInvalidTransition, "status CONFIRMED -> PENDING"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "PENDING"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 400 on an unknown status", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, "SHIPPED").
			Return(nil, errs.Mark(booking.ErrInvalidStatus, commands.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "SHIPPED"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 when the body misses status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestUpdatePaymentStatus() {
	view := builder.NewBookingBuilder().WithPaymentStatus(booking.PaymentPaid).BuildView()
	url := "/bookings/" + view.ID.String() + "/payment"

	s.Run("success: updates the payment status", func() {
		s.mockCommands.EXPECT().UpdatePaymentStatus(gomock.Any(), view.ID, "PAID").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"paymentStatus": "PAID"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().UpdatePaymentStatus(gomock.Any(), view.ID, "PAID").
			Return(nil, commands.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"paymentStatus": "PAID"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	view := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: cancels own booking", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), view.ID, s.userID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var got queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(booking.StatusCancelled.String(), got.Status)
	})

	s.Run("error: someone else's booking reads as 404", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), view.ID, s.userID).
			Return(nil, commands.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
