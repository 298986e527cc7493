package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seelv/dancebook/internal/api/handler/v1/request"
	"github.com/seelv/dancebook/internal/api/handler/v1/response"
	"github.com/seelv/dancebook/internal/domain"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID, packID uint) (domain.Booking, error)
	ListBookingsForUser(ctx context.Context, userID uint) ([]domain.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID uint) (domain.Booking, error)
	MarkPaid(ctx context.Context, userID, bookingID uint) (domain.Booking, error)
	DeleteBooking(ctx context.Context, userID, bookingID uint) error
}

type BookingHandler struct {
	svc BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{
		svc: svc,
	}
}

// HandleListBookings godoc
// @Summary      List the bookings of the authenticated user
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  response.Err
// @Router       /bookings [get]
// @Security     BearerAuth
func (h *BookingHandler) HandleListBookings(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	bookings, err := h.svc.ListBookingsForUser(ctx.Request.Context(), user.ID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleListBookings -> h.svc.ListBookingsForUser", err))
		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

// HandleCreateBooking godoc
// @Summary      Book a pack
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateBookingRequest  true  "request body"
// @Success      201      {object}  domain.Booking
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Router       /bookings [post]
// @Security     BearerAuth
func (h *BookingHandler) HandleCreateBooking(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	booking, err := h.svc.CreateBooking(ctx.Request.Context(), user.ID, req.PackID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleCreateBooking -> h.svc.CreateBooking", err))
		return
	}

	ctx.JSON(http.StatusCreated, booking)
}

// HandleGetBooking godoc
// @Summary      Get a booking of the authenticated user
// @Tags         bookings
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  domain.Booking
// @Failure      404        {object}  response.Err
// @Router       /bookings/{bookingID} [get]
// @Security     BearerAuth
func (h *BookingHandler) HandleGetBooking(ctx *gin.Context) {
	user, bookingID, respErr := h.userAndBooking(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	booking, err := h.svc.GetBooking(ctx.Request.Context(), user.ID, bookingID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleGetBooking -> h.svc.GetBooking", err))
		return
	}

	ctx.JSON(http.StatusOK, booking)
}

// HandlePayBooking godoc
// @Summary      Mark a booking as paid
// @Tags         bookings
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  domain.Booking
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Router       /bookings/{bookingID}/pay [post]
// @Security     BearerAuth
func (h *BookingHandler) HandlePayBooking(ctx *gin.Context) {
	user, bookingID, respErr := h.userAndBooking(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	booking, err := h.svc.MarkPaid(ctx.Request.Context(), user.ID, bookingID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandlePayBooking -> h.svc.MarkPaid", err))
		return
	}

	ctx.JSON(http.StatusOK, booking)
}

// HandleDeleteBooking godoc
// @Summary      Cancel a booking of the authenticated user
// @Tags         bookings
// @Param        bookingID  path  int  true  "Booking ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Router       /bookings/{bookingID} [delete]
// @Security     BearerAuth
func (h *BookingHandler) HandleDeleteBooking(ctx *gin.Context) {
	user, bookingID, respErr := h.userAndBooking(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteBooking(ctx.Request.Context(), user.ID, bookingID); err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleDeleteBooking -> h.svc.DeleteBooking", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *BookingHandler) userAndBooking(ctx *gin.Context) (domain.User, uint, *response.Err) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		return domain.User{}, 0, respErr
	}

	bookingID, respErr := parseIDParam(ctx, "bookingID")
	if respErr != nil {
		return domain.User{}, 0, respErr
	}

	return user, bookingID, nil
}
