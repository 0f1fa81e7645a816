package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/YOUNSSBOSS/car-rent/internal/model"
	repo_mocks "github.com/YOUNSSBOSS/car-rent/internal/repository/mocks"
	"github.com/YOUNSSBOSS/car-rent/internal/service"
)

func TestStatsService_Dashboard(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	users := repo_mocks.NewMockUserRepository(c)
	cars := repo_mocks.NewMockCarRepository(c)
	bookings := repo_mocks.NewMockBookingRepository(c)
	svc := service.NewStatsService(users, cars, bookings, zap.NewExample().Named("test"))

	recent := []model.BookingDetails{
		{
			Booking:  model.Booking{BookingUID: "f7cdc58f-2caf-4b15-9727-f89dcc629b27", Status: model.BookingPending},
			Username: "renter",
			CarMake:  "Kia",
			CarModel: "Rio",
		},
	}
	// the aggregates run concurrently on a derived context
	users.EXPECT().CountByRole(gomock.Any()).Return(model.UserStats{Total: 4, Admins: 1}, nil)
	cars.EXPECT().CountByStatus(gomock.Any()).Return(model.CarStats{Total: 3, Available: 2, Maintenance: 1}, nil)
	bookings.EXPECT().CountByStatus(gomock.Any()).
		Return(model.BookingStats{Total: 6, Pending: 2, Confirmed: 1, Cancelled: 1, Completed: 2}, nil)
	bookings.EXPECT().SumPriceWhere(gomock.Any(), model.BookingCompleted).Return(360.0, nil)
	bookings.EXPECT().ListRecent(gomock.Any(), 5).Return(recent, nil)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.DashboardStats{
		Users:          model.UserStats{Total: 4, Admins: 1},
		Cars:           model.CarStats{Total: 3, Available: 2, Maintenance: 1},
		Bookings:       model.BookingStats{Total: 6, Pending: 2, Confirmed: 1, Cancelled: 1, Completed: 2},
		Revenue:        model.Revenue{TotalCompletedRevenue: 360},
		RecentBookings: recent,
	}, stats)
}

func TestStatsService_Dashboard_AggregateError(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	users := repo_mocks.NewMockUserRepository(c)
	cars := repo_mocks.NewMockCarRepository(c)
	bookings := repo_mocks.NewMockBookingRepository(c)
	svc := service.NewStatsService(users, cars, bookings, zap.NewExample().Named("test"))

	// sibling aggregates may or may not run before the group is cancelled
	users.EXPECT().CountByRole(gomock.Any()).Return(model.UserStats{}, nil).AnyTimes()
	cars.EXPECT().CountByStatus(gomock.Any()).Return(model.CarStats{}, nil).AnyTimes()
	bookings.EXPECT().CountByStatus(gomock.Any()).Return(model.BookingStats{}, nil).AnyTimes()
	bookings.EXPECT().ListRecent(gomock.Any(), 5).Return(nil, nil).AnyTimes()
	bookings.EXPECT().SumPriceWhere(gomock.Any(), model.BookingCompleted).
		Return(0.0, errors.New("db internal"))

	_, err := svc.Dashboard(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "db internal")
}
