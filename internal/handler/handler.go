package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/YOUNSSBOSS/car-rent/internal/errs"
	"github.com/YOUNSSBOSS/car-rent/pkg/auth"
	"github.com/YOUNSSBOSS/car-rent/pkg/validate"
	_ "github.com/YOUNSSBOSS/car-rent/swagger"
)

type Handler struct {
	authSvc    AuthService
	carSvc     CarService
	bookingSvc BookingService
	statsSvc   StatsService
	authCfg    auth.Config
	log        *zap.Logger
}

func New(authSvc AuthService, carSvc CarService, bookingSvc BookingService, statsSvc StatsService, authCfg auth.Config, log *zap.Logger) *Handler {
	return &Handler{
		authSvc:    authSvc,
		carSvc:     carSvc,
		bookingSvc: bookingSvc,
		statsSvc:   statsSvc,
		authCfg:    authCfg,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	api.GET("/cars", h.ListCars)
	api.GET("/cars/:carUid", h.GetCar)

	authed := api.Group("", h.authenticateMW)
	authed.GET("/auth/me", h.Me)
	authed.POST("/auth/change-password", h.ChangePassword)

	authed.POST("/bookings", h.CreateBooking)
	authed.GET("/bookings", h.ListMyBookings)
	authed.POST("/bookings/:bookingUid/cancel", h.CancelBooking)

	admin := authed.Group("/admin", h.adminMW)
	admin.GET("/cars", h.AdminListCars)
	admin.POST("/cars", h.CreateCar)
	admin.GET("/cars/:carUid", h.GetCar)
	admin.PUT("/cars/:carUid", h.UpdateCar)
	admin.DELETE("/cars/:carUid", h.DeleteCar)

	admin.GET("/bookings", h.ListAllBookings)
	admin.PATCH("/bookings/:bookingUid/status", h.UpdateBookingStatus)

	admin.GET("/dashboard", h.Dashboard)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// uuidParam returns the named path parameter, rejecting values that would
// fail the uuid cast in the database.
func uuidParam(c echo.Context, name string) (string, error) {
	raw := c.Param(name)
	if raw == "" {
		return "", errors.New(name + " is empty")
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", errors.New(name + " must be a uuid")
	}
	return raw, nil
}

// httpError translates service error kinds into transport codes.
func httpError(err error) *echo.HTTPError {
	var code int
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrState):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	default:
		code = http.StatusInternalServerError
	}
	return echo.NewHTTPError(code, err.Error())
}
