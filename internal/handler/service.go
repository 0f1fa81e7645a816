package handler

import (
	"context"

	"github.com/YOUNSSBOSS/car-rent/internal/model"
	"github.com/YOUNSSBOSS/car-rent/internal/service"
	"github.com/YOUNSSBOSS/car-rent/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ AuthService    = (*service.AuthService)(nil)
	_ CarService     = (*service.CarService)(nil)
	_ BookingService = (*service.BookingService)(nil)
	_ StatsService   = (*service.StatsService)(nil)
)

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	ChangePassword(ctx context.Context, actor auth.Actor, req model.ChangePasswordRequest) error
	Me(ctx context.Context, actor auth.Actor) (model.User, error)
}

type CarService interface {
	Create(ctx context.Context, req model.CreateCarRequest) (model.Car, error)
	Get(ctx context.Context, carUID string) (model.Car, error)
	List(ctx context.Context, filter model.CarFilter) ([]model.Car, error)
	Update(ctx context.Context, carUID string, req model.UpdateCarRequest) (model.Car, error)
	Delete(ctx context.Context, carUID string) error
}

type BookingService interface {
	Create(ctx context.Context, actor auth.Actor, req model.CreateBookingRequest) (model.Booking, error)
	Cancel(ctx context.Context, actor auth.Actor, bookingUID string) (model.Booking, error)
	SetStatus(ctx context.Context, actor auth.Actor, bookingUID string, status model.BookingStatus) (model.Booking, error)
	ListByUser(ctx context.Context, actor auth.Actor) ([]model.BookingDetails, error)
	List(ctx context.Context, filter model.BookingFilter, page, size int, sort model.BookingSort) (model.ListBookings, error)
}

type StatsService interface {
	Dashboard(ctx context.Context) (model.DashboardStats, error)
}
