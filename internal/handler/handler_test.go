package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/YOUNSSBOSS/car-rent/internal/errs"
	"github.com/YOUNSSBOSS/car-rent/internal/handler"
	"github.com/YOUNSSBOSS/car-rent/internal/model"
	"github.com/YOUNSSBOSS/car-rent/pkg/auth"

	service_mocks "github.com/YOUNSSBOSS/car-rent/internal/handler/mocks"
)

const (
	testUserUID    = "a8f5c3ce-99bc-4a36-b04a-4e6c1b1287a5"
	testAdminUID   = "7e8b9a40-0c84-4f9f-bd0d-2f5c6cd5a36e"
	testCarUID     = "109b42f3-198d-4c89-9276-a7520a7120ab"
	testBookingUID = "0214be8a-3ff0-4a09-9e50-0e2a3705b7c7"
)

var testAuthCfg = auth.Config{JWTKey: "test-key", TokenTTL: time.Hour}

type serviceMocks struct {
	auth    *service_mocks.MockAuthService
	car     *service_mocks.MockCarService
	booking *service_mocks.MockBookingService
	stats   *service_mocks.MockStatsService
}

func newTestRouter(t *testing.T) (*echo.Echo, serviceMocks) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	m := serviceMocks{
		auth:    service_mocks.NewMockAuthService(c),
		car:     service_mocks.NewMockCarService(c),
		booking: service_mocks.NewMockBookingService(c),
		stats:   service_mocks.NewMockStatsService(c),
	}
	h := handler.New(m.auth, m.car, m.booking, m.stats, testAuthCfg, zap.NewExample().Named("test"))
	return h.NewRouter(), m
}

func bearerToken(t *testing.T, uid, username, role string) string {
	t.Helper()
	token, _, err := auth.NewToken(testAuthCfg, auth.Profile{
		UserUID:  uid,
		Username: username,
		Role:     role,
	}, username+"@example.com")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestHandler_ListCars(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m serviceMocks)

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok",
			query: "",
			mockBehavior: func(m serviceMocks) {
				m.car.EXPECT().
					List(context.Background(), model.CarFilter{Status: model.CarAvailable}).
					Return([]model.Car{
						{
							CarUID:      testCarUID,
							Make:        "Kia",
							Model:       "Rio",
							Year:        2021,
							PricePerDay: 45,
							Status:      model.CarAvailable,
							Features:    model.Features{"gps"},
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"carUid":"109b42f3-198d-4c89-9276-a7520a7120ab","make":"Kia","model":"Rio","year":2021,"pricePerDay":45,"status":"available","features":["gps"],"createdAt":"0001-01-01T00:00:00Z"}]`,
			},
		},
		{
			name:  "ok. price bounds forwarded",
			query: "?minPrice=30&maxPrice=80",
			mockBehavior: func(m serviceMocks) {
				min, max := 30.0, 80.0
				m.car.EXPECT().
					List(context.Background(), model.CarFilter{Status: model.CarAvailable, MinPrice: &min, MaxPrice: &max}).
					Return([]model.Car{}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[]`,
			},
		},
		{
			name:         "err. bad price",
			query:        "?minPrice=cheap",
			mockBehavior: func(m serviceMocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:  "err. internal",
			query: "",
			mockBehavior: func(m serviceMocks) {
				m.car.EXPECT().
					List(context.Background(), model.CarFilter{Status: model.CarAvailable}).
					Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodGet, "/api/v1/cars"+tt.query, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Parallel()
	actor := auth.Actor{UserUID: testUserUID, Username: "renter", Role: auth.RoleUser}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m serviceMocks)

	var tests = []struct {
		name         string
		body         string
		authHeader   string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: fmt.Sprintf(`{"carUid":%q,"startDate":"2030-06-01","endDate":"2030-06-03"}`, testCarUID),
			authHeader: bearerToken(t, testUserUID, "renter", auth.RoleUser),
			mockBehavior: func(m serviceMocks) {
				m.booking.EXPECT().
					Create(context.Background(), actor, model.CreateBookingRequest{
						CarUID:    testCarUID,
						StartDate: model.NewDate(2030, time.June, 1),
						EndDate:   model.NewDate(2030, time.June, 3),
					}).
					Return(model.Booking{
						BookingUID: testBookingUID,
						UserUID:    testUserUID,
						CarUID:     testCarUID,
						StartDate:  model.NewDate(2030, time.June, 1),
						EndDate:    model.NewDate(2030, time.June, 3),
						TotalPrice: 120,
						Status:     model.BookingPending,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"bookingUid":"0214be8a-3ff0-4a09-9e50-0e2a3705b7c7","userUid":"a8f5c3ce-99bc-4a36-b04a-4e6c1b1287a5","carUid":"109b42f3-198d-4c89-9276-a7520a7120ab","startDate":"2030-06-01","endDate":"2030-06-03","totalPrice":120,"status":"pending","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. conflict",
			body: fmt.Sprintf(`{"carUid":%q,"startDate":"2030-06-01","endDate":"2030-06-03"}`, testCarUID),
			authHeader: bearerToken(t, testUserUID, "renter", auth.RoleUser),
			mockBehavior: func(m serviceMocks) {
				m.booking.EXPECT().
					Create(context.Background(), actor, gomock.AssignableToTypeOf(model.CreateBookingRequest{})).
					Return(model.Booking{}, errs.ErrConflict)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"conflict"}`,
			},
		},
		{
			name:         "err. no token",
			body:         fmt.Sprintf(`{"carUid":%q,"startDate":"2030-06-01","endDate":"2030-06-03"}`, testCarUID),
			authHeader:   "",
			mockBehavior: func(m serviceMocks) {},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"no Authorization header"}`,
			},
		},
		{
			name:         "err. carUid not a uuid",
			body:         `{"carUid":"not-a-uuid","startDate":"2030-06-01","endDate":"2030-06-03"}`,
			authHeader:   bearerToken(t, testUserUID, "renter", auth.RoleUser),
			mockBehavior: func(m serviceMocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.authHeader != "" {
				r.Header.Set(handler.AuthorizationHeader, tt.authHeader)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CancelBooking(t *testing.T) {
	t.Parallel()
	actor := auth.Actor{UserUID: testUserUID, Username: "renter", Role: auth.RoleUser}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m serviceMocks)

	var tests = []struct {
		name         string
		bookingUID   string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:       "ok",
			bookingUID: testBookingUID,
			mockBehavior: func(m serviceMocks) {
				m.booking.EXPECT().
					Cancel(context.Background(), actor, testBookingUID).
					Return(model.Booking{
						BookingUID: testBookingUID,
						UserUID:    testUserUID,
						CarUID:     testCarUID,
						StartDate:  model.NewDate(2030, time.June, 1),
						EndDate:    model.NewDate(2030, time.June, 3),
						TotalPrice: 120,
						Status:     model.BookingCancelled,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"bookingUid":"0214be8a-3ff0-4a09-9e50-0e2a3705b7c7","userUid":"a8f5c3ce-99bc-4a36-b04a-4e6c1b1287a5","carUid":"109b42f3-198d-4c89-9276-a7520a7120ab","startDate":"2030-06-01","endDate":"2030-06-03","totalPrice":120,"status":"cancelled","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			// a malformed id must be rejected before it reaches the store,
			// where it would fail the uuid cast as an opaque error
			name:         "err. id is not a uuid",
			bookingUID:   "abc",
			mockBehavior: func(m serviceMocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"bookingUid must be a uuid"}`,
			},
		},
		{
			name:       "err. not the owner",
			bookingUID: testBookingUID,
			mockBehavior: func(m serviceMocks) {
				m.booking.EXPECT().
					Cancel(context.Background(), actor, testBookingUID).
					Return(model.Booking{}, errs.ErrForbidden)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"forbidden"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPost,
				fmt.Sprintf("/api/v1/bookings/%s/cancel", tt.bookingUID), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(handler.AuthorizationHeader, bearerToken(t, testUserUID, "renter", auth.RoleUser))
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_MalformedIDs(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name         string
		method       string
		target       string
		admin        bool
		expectedBody string
	}{
		{
			name:         "get car",
			method:       http.MethodGet,
			target:       "/api/v1/cars/not-a-uuid",
			expectedBody: `{"message":"carUid must be a uuid"}`,
		},
		{
			name:         "delete car",
			method:       http.MethodDelete,
			target:       "/api/v1/admin/cars/not-a-uuid",
			admin:        true,
			expectedBody: `{"message":"carUid must be a uuid"}`,
		},
		{
			name:         "booking status",
			method:       http.MethodPatch,
			target:       "/api/v1/admin/bookings/not-a-uuid/status",
			admin:        true,
			expectedBody: `{"message":"bookingUid must be a uuid"}`,
		},
		{
			name:         "bookings filter by user",
			method:       http.MethodGet,
			target:       "/api/v1/admin/bookings?userUid=not-a-uuid",
			admin:        true,
			expectedBody: `{"message":"userUid must be a uuid"}`,
		},
		{
			name:         "bookings filter by car",
			method:       http.MethodGet,
			target:       "/api/v1/admin/bookings?carUid=not-a-uuid",
			admin:        true,
			expectedBody: `{"message":"carUid must be a uuid"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, _ := newTestRouter(t)

			r := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.admin {
				r.Header.Set(handler.AuthorizationHeader, bearerToken(t, testAdminUID, "boss", auth.RoleAdmin))
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdateBookingStatus(t *testing.T) {
	t.Parallel()
	admin := auth.Actor{UserUID: testAdminUID, Username: "boss", Role: auth.RoleAdmin}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m serviceMocks)

	var tests = []struct {
		name         string
		body         string
		authHeader   string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:       "ok",
			body:       `{"status":"confirmed"}`,
			authHeader: bearerToken(t, testAdminUID, "boss", auth.RoleAdmin),
			mockBehavior: func(m serviceMocks) {
				m.booking.EXPECT().
					SetStatus(context.Background(), admin, testBookingUID, model.BookingConfirmed).
					Return(model.Booking{
						BookingUID: testBookingUID,
						UserUID:    testUserUID,
						CarUID:     testCarUID,
						StartDate:  model.NewDate(2030, time.June, 1),
						EndDate:    model.NewDate(2030, time.June, 3),
						TotalPrice: 120,
						Status:     model.BookingConfirmed,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"bookingUid":"0214be8a-3ff0-4a09-9e50-0e2a3705b7c7","userUid":"a8f5c3ce-99bc-4a36-b04a-4e6c1b1287a5","carUid":"109b42f3-198d-4c89-9276-a7520a7120ab","startDate":"2030-06-01","endDate":"2030-06-03","totalPrice":120,"status":"confirmed","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name:       "err. illegal transition",
			body:       `{"status":"confirmed"}`,
			authHeader: bearerToken(t, testAdminUID, "boss", auth.RoleAdmin),
			mockBehavior: func(m serviceMocks) {
				m.booking.EXPECT().
					SetStatus(context.Background(), admin, testBookingUID, model.BookingConfirmed).
					Return(model.Booking{}, errors.Wrap(errs.ErrState, "booking is already declined"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"booking is already declined: state not allowed"}`,
			},
		},
		{
			name:         "err. not an admin",
			body:         `{"status":"confirmed"}`,
			authHeader:   bearerToken(t, testUserUID, "renter", auth.RoleUser),
			mockBehavior: func(m serviceMocks) {},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"admin role required"}`,
			},
		},
		{
			name:         "err. unknown status rejected by validation",
			body:         `{"status":"paused"}`,
			authHeader:   bearerToken(t, testAdminUID, "boss", auth.RoleAdmin),
			mockBehavior: func(m serviceMocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPatch,
				fmt.Sprintf("/api/v1/admin/bookings/%s/status", testBookingUID), strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(handler.AuthorizationHeader, tt.authHeader)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
	}
	type mockBehavior func(m serviceMocks)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"username":"renter","email":"renter@example.com","password":"secret123"}`,
			mockBehavior: func(m serviceMocks) {
				m.auth.EXPECT().
					Register(context.Background(), model.RegisterRequest{
						Username: "renter",
						Email:    "renter@example.com",
						Password: "secret123",
					}).
					Return(model.AuthResponse{
						User:        model.User{UserUID: testUserUID, Username: "renter", Email: "renter@example.com", Role: model.RoleUser},
						AccessToken: "jwt",
					}, nil)
			},
			response: response{expectedCode: http.StatusCreated},
		},
		{
			name:         "err. short password",
			body:         `{"username":"renter","email":"renter@example.com","password":"123"}`,
			mockBehavior: func(m serviceMocks) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "err. duplicate email",
			body: `{"username":"renter","email":"renter@example.com","password":"secret123"}`,
			mockBehavior: func(m serviceMocks) {
				m.auth.EXPECT().
					Register(context.Background(), gomock.AssignableToTypeOf(model.RegisterRequest{})).
					Return(model.AuthResponse{}, errs.ErrConflict)
			},
			response: response{expectedCode: http.StatusConflict},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
		})
	}
}
