package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/YOUNSSBOSS/car-rent/internal/model"
)

// CreateBooking godoc
// @Summary  Request a booking for a car and date range
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    request body model.CreateBookingRequest true "booking request"
// @Success  201 {object} model.Booking
// @Security BearerAuth
// @Router   /api/v1/bookings [post]
func (h *Handler) CreateBooking(c echo.Context) error {
	actor, err := extractActor(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	booking, err := h.bookingSvc.Create(c.Request().Context(), actor, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, booking)
}

// ListMyBookings godoc
// @Summary  List the requesting user's bookings
// @Tags     bookings
// @Produce  json
// @Success  200 {array} model.BookingDetails
// @Security BearerAuth
// @Router   /api/v1/bookings [get]
func (h *Handler) ListMyBookings(c echo.Context) error {
	actor, err := extractActor(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookings, err := h.bookingSvc.ListByUser(c.Request().Context(), actor)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// CancelBooking godoc
// @Summary  Cancel an own booking
// @Tags     bookings
// @Produce  json
// @Param    bookingUid path string true "booking uid"
// @Success  200 {object} model.Booking
// @Security BearerAuth
// @Router   /api/v1/bookings/{bookingUid}/cancel [post]
func (h *Handler) CancelBooking(c echo.Context) error {
	actor, err := extractActor(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookingUID, err := uuidParam(c, "bookingUid")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	booking, err := h.bookingSvc.Cancel(c.Request().Context(), actor, bookingUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}
