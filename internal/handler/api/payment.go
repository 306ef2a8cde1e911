package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "wayfare/internal/handler/dto/request"
	resdto "wayfare/internal/handler/dto/response"
	"wayfare/internal/handler/httperr"
	"wayfare/internal/handler/middleware"
	"wayfare/internal/pkg/errs"
	"wayfare/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	commands commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{commands: cmds}
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user id in context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	intent, err := h.commands.CreateIntent(c.Request.Context(), req.BookingID, userID)
	if err != nil {
		h.abortPaymentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPaymentIntent(intent))
}

func (h *PaymentHandler) GetIntent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user id in context"), "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	intent, err := h.commands.GetIntent(c.Request.Context(), bookingID, userID)
	if err != nil {
		h.abortPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentIntent(intent))
}

func (h *PaymentHandler) Refund(c *gin.Context) {
	var req reqdto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	refund, err := h.commands.Refund(c.Request.Context(), req.BookingID)
	if err != nil {
		h.abortPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefund(refund))
}

// Webhook receives provider callbacks. The body must stay raw for signature
// verification.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, 1<<16))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read request body", nil)
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.commands.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		if errors.Is(err, commands.ErrInvalidWebhook) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid webhook signature", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *PaymentHandler) abortPaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrNoPaymentOnBooking):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking has no payment", nil)
	case errors.Is(err, commands.ErrBookingNotPaid):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking is not paid", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
