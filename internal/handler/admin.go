package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/YOUNSSBOSS/car-rent/internal/model"
)

func (h *Handler) AdminListCars(c echo.Context) error {
	filter, err := carFilterFromQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if status := c.QueryParam("status"); status != "" {
		filter.Status = model.CarStatus(status)
		if !filter.Status.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown car status")
		}
	}
	cars, err := h.carSvc.List(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cars)
}

func (h *Handler) CreateCar(c echo.Context) error {
	var req model.CreateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	car, err := h.carSvc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, car)
}

func (h *Handler) UpdateCar(c echo.Context) error {
	carUID, err := uuidParam(c, "carUid")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.UpdateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	car, err := h.carSvc.Update(c.Request().Context(), carUID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, car)
}

func (h *Handler) DeleteCar(c echo.Context) error {
	carUID, err := uuidParam(c, "carUid")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.carSvc.Delete(c.Request().Context(), carUID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListAllBookings godoc
// @Summary  List all bookings with filtering, paging and sorting
// @Tags     admin
// @Produce  json
// @Param    status query string false "booking status"
// @Param    userUid query string false "filter by user"
// @Param    carUid query string false "filter by car"
// @Param    page query int false "page number"
// @Param    size query int false "page size"
// @Param    sortBy query string false "created_at | start_date | total_price"
// @Param    sortOrder query string false "asc | desc"
// @Success  200 {object} model.ListBookings
// @Security BearerAuth
// @Router   /api/v1/admin/bookings [get]
func (h *Handler) ListAllBookings(c echo.Context) error {
	filter := model.BookingFilter{
		UserUID: c.QueryParam("userUid"),
		CarUID:  c.QueryParam("carUid"),
	}
	if filter.UserUID != "" {
		if _, err := uuid.Parse(filter.UserUID); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "userUid must be a uuid")
		}
	}
	if filter.CarUID != "" {
		if _, err := uuid.Parse(filter.CarUID); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "carUid must be a uuid")
		}
	}
	if status := c.QueryParam("status"); status != "" {
		filter.Status = model.BookingStatus(status)
		if !filter.Status.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown booking status")
		}
	}

	page, size := 1, 10
	if raw := c.QueryParam("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid page")
		}
		page = v
	}
	if raw := c.QueryParam("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid size")
		}
		size = v
	}
	sort := model.BookingSort{
		By:    c.QueryParam("sortBy"),
		Order: c.QueryParam("sortOrder"),
	}

	list, err := h.bookingSvc.List(c.Request().Context(), filter, page, size, sort)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// UpdateBookingStatus godoc
// @Summary  Set the status of any booking
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    bookingUid path string true "booking uid"
// @Param    request body model.UpdateBookingStatusRequest true "target status"
// @Success  200 {object} model.Booking
// @Security BearerAuth
// @Router   /api/v1/admin/bookings/{bookingUid}/status [patch]
func (h *Handler) UpdateBookingStatus(c echo.Context) error {
	actor, err := extractActor(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookingUID, err := uuidParam(c, "bookingUid")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	booking, err := h.bookingSvc.SetStatus(c.Request().Context(), actor, bookingUID, req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

// Dashboard godoc
// @Summary  Aggregate statistics snapshot
// @Tags     admin
// @Produce  json
// @Success  200 {object} model.DashboardStats
// @Security BearerAuth
// @Router   /api/v1/admin/dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	stats, err := h.statsSvc.Dashboard(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
