package api

import (
	"errors"
	"net/http"
	"strconv"

	"wayfare/internal/domain/booking"
	reqdto "wayfare/internal/handler/dto/request"
	resdto "wayfare/internal/handler/dto/response"
	"wayfare/internal/handler/httperr"
	"wayfare/internal/handler/middleware"
	"wayfare/internal/pkg/errs"
	"wayfare/internal/usecase/commands"
	"wayfare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands     commands.BookingCommands
	queries      queries.BookingQueries
	availability queries.AvailabilityEngine
}

func NewBookingHandler(
	cmds commands.BookingCommands,
	qs queries.BookingQueries,
	availability queries.AvailabilityEngine,
) *BookingHandler {
	return &BookingHandler{
		commands:     cmds,
		queries:      qs,
		availability: availability,
	}
}

// CheckAvailability reports whether the requested booking could be made right
// now and, when it could, what it would cost.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params := req.ToCheckParams()
	result, err := h.availability.Check(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp := resdto.AvailabilityResponse{Available: result.Available, Reason: result.Reason}
	if result.Available {
		quote, err := h.availability.Quote(c.Request.Context(), params)
		if err == nil {
			resp.Quote = quote
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user id in context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.CreateBooking(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNotAvailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	// Owners see their own bookings; vendors and admins see any.
	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	if view.CustomerID != userID && !role.CanViewAnyBooking() {
		httperr.AbortWithError(c, http.StatusNotFound, queries.ErrBookingNotFound, "Booking not found", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user id in context"), "Internal server error", nil)
		return
	}

	page := pageFromQuery(c)
	views, err := h.queries.ListByCustomer(c.Request.Context(), userID, page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewBookingList(views, page.Normalize()))
}

// ListListingBookings is for vendors and admins reviewing a listing's book.
func (h *BookingHandler) ListListingBookings(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing ID format", nil)
		return
	}

	role, _ := middleware.GetUserRole(c)
	if !role.CanViewAnyBooking() {
		httperr.AbortWithError(c, http.StatusForbidden, errs.New("role cannot view listing bookings"), "Insufficient permissions", nil)
		return
	}

	page := pageFromQuery(c)
	views, err := h.queries.ListByListing(c.Request.Context(), listingID, page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewBookingList(views, page.Normalize()))
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.abortTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) UpdatePaymentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.UpdatePaymentStatus(c.Request.Context(), id, req.PaymentStatus)
	if err != nil {
		h.abortTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user id in context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.commands.CancelBooking(c.Request.Context(), id, userID)
	if err != nil {
		h.abortTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) abortTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, booking.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func pageFromQuery(c *gin.Context) queries.Page {
	page := queries.Page{}
	if v, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 32); err == nil {
		page.Number = int32(v)
	}
	if v, err := strconv.ParseInt(c.DefaultQuery("size", "20"), 10, 32); err == nil {
		page.Size = int32(v)
	}
	return page
}
