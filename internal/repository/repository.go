package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/YOUNSSBOSS/car-rent/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type UserRepository interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	GetByUID(ctx context.Context, userUID string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	UpdatePassword(ctx context.Context, userUID, passwordHash string) error
	CountByRole(ctx context.Context) (model.UserStats, error)
}

type CarRepository interface {
	Create(ctx context.Context, car model.Car) (model.Car, error)
	GetByUID(ctx context.Context, carUID string) (model.Car, error)
	List(ctx context.Context, filter model.CarFilter) ([]model.Car, error)
	Update(ctx context.Context, car model.Car) (model.Car, error)
	Delete(ctx context.Context, carUID string) error
	CountByStatus(ctx context.Context) (model.CarStats, error)
}

type BookingRepository interface {
	// Create serializes the conflict check and the insert per car: the car
	// row is locked for the duration of the transaction and the overlap
	// exclusion constraint backs the check at commit time.
	Create(ctx context.Context, booking model.Booking) (model.Booking, error)
	GetByUID(ctx context.Context, bookingUID string) (model.Booking, error)
	FindOverlapping(ctx context.Context, carUID string, start, end model.Date, statuses []model.BookingStatus) ([]model.Booking, error)
	HasActiveByCar(ctx context.Context, carUID string) (bool, error)
	ListByUser(ctx context.Context, userUID string) ([]model.BookingDetails, error)
	List(ctx context.Context, filter model.BookingFilter, page, size int, sort model.BookingSort) (model.ListBookings, error)
	UpdateStatus(ctx context.Context, bookingUID string, status model.BookingStatus) (model.Booking, error)
	CountByStatus(ctx context.Context) (model.BookingStats, error)
	ListRecent(ctx context.Context, n int) ([]model.BookingDetails, error)
	SumPriceWhere(ctx context.Context, status model.BookingStatus) (float64, error)
}

type Repositories struct {
	User    UserRepository
	Car     CarRepository
	Booking BookingRepository
}

func New(db *sqlx.DB, log *zap.Logger) *Repositories {
	return &Repositories{
		User:    newUserRepository(db, log),
		Car:     newCarRepository(db, log),
		Booking: newBookingRepository(db, log),
	}
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func columnList(cols []string) string {
	return strings.Join(cols, ", ")
}

func pgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
