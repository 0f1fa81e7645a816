package service

import (
	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/YOUNSSBOSS/car-rent/internal/repository"
	"github.com/YOUNSSBOSS/car-rent/pkg/auth"
)

type Services struct {
	Auth    *AuthService
	Car     *CarService
	Booking *BookingService
	Stats   *StatsService
}

func New(repos *repository.Repositories, producer sarama.SyncProducer, authCfg auth.Config, log *zap.Logger) *Services {
	enqueuer := NewEnqueuer(producer)
	return &Services{
		Auth:    NewAuthService(repos.User, authCfg, log),
		Car:     NewCarService(repos.Car, repos.Booking, log),
		Booking: NewBookingService(repos.Booking, repos.Car, repos.User, enqueuer, log),
		Stats:   NewStatsService(repos.User, repos.Car, repos.Booking, log),
	}
}
