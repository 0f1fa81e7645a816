package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/YOUNSSBOSS/car-rent/internal/model"
	"github.com/YOUNSSBOSS/car-rent/internal/repository"
)

const recentBookingsLimit = 5

type StatsService struct {
	log      *zap.Logger
	users    repository.UserRepository
	cars     repository.CarRepository
	bookings repository.BookingRepository
}

func NewStatsService(users repository.UserRepository, cars repository.CarRepository, bookings repository.BookingRepository, log *zap.Logger) *StatsService {
	return &StatsService{
		log:      log.Named("stats"),
		users:    users,
		cars:     cars,
		bookings: bookings,
	}
}

// Dashboard recomputes every aggregate from current store state on each
// call; there is no caching and no transactional snapshot.
func (s *StatsService) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		users, err := s.users.CountByRole(ctx)
		stats.Users = users
		return err
	})
	gg.Go(func() error {
		cars, err := s.cars.CountByStatus(ctx)
		stats.Cars = cars
		return err
	})
	gg.Go(func() error {
		bookings, err := s.bookings.CountByStatus(ctx)
		stats.Bookings = bookings
		return err
	})
	gg.Go(func() error {
		revenue, err := s.bookings.SumPriceWhere(ctx, model.BookingCompleted)
		stats.Revenue = model.Revenue{TotalCompletedRevenue: revenue}
		return err
	})
	gg.Go(func() error {
		recent, err := s.bookings.ListRecent(ctx, recentBookingsLimit)
		stats.RecentBookings = recent
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}
