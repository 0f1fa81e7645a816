package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/YOUNSSBOSS/car-rent/internal/errs"
	"github.com/YOUNSSBOSS/car-rent/internal/model"
	"github.com/YOUNSSBOSS/car-rent/internal/repository"
	"github.com/YOUNSSBOSS/car-rent/pkg/auth"
	"github.com/YOUNSSBOSS/car-rent/pkg/kafka"
)

// BookingService validates and creates booking requests, detects date-range
// conflicts and drives the status state machine. Availability is always
// recomputed from active bookings; Car.Status is only an admin-set gate.
type BookingService struct {
	log      *zap.Logger
	bookings repository.BookingRepository
	cars     repository.CarRepository
	users    repository.UserRepository
	enqueuer Enqueuer
}

func NewBookingService(bookings repository.BookingRepository, cars repository.CarRepository, users repository.UserRepository, enqueuer Enqueuer, log *zap.Logger) *BookingService {
	return &BookingService{
		log:      log.Named("booking"),
		bookings: bookings,
		cars:     cars,
		users:    users,
		enqueuer: enqueuer,
	}
}

func (s *BookingService) Create(ctx context.Context, actor auth.Actor, req model.CreateBookingRequest) (model.Booking, error) {
	if !req.EndDate.After(req.StartDate.Time) {
		return model.Booking{}, errors.Wrap(errs.ErrInvalidInput, "end date must be after start date")
	}
	if req.StartDate.Before(model.Today().Time) {
		return model.Booking{}, errors.Wrap(errs.ErrInvalidInput, "start date cannot be in the past")
	}

	if _, err := s.users.GetByUID(ctx, actor.UserUID); err != nil {
		return model.Booking{}, err
	}
	car, err := s.cars.GetByUID(ctx, req.CarUID)
	if err != nil {
		return model.Booking{}, err
	}
	if car.Status != model.CarAvailable {
		return model.Booking{}, errors.Wrapf(errs.ErrState,
			"car %s is not currently available for booking (status %s)", car.CarUID, car.Status)
	}

	overlapping, err := s.bookings.FindOverlapping(ctx, req.CarUID, req.StartDate, req.EndDate, model.ActiveBookingStatuses)
	if err != nil {
		return model.Booking{}, err
	}
	if len(overlapping) > 0 {
		return model.Booking{}, errors.Wrapf(errs.ErrConflict,
			"car %s is already booked for the selected dates", car.CarUID)
	}

	days := model.DurationDays(req.StartDate, req.EndDate)
	if days < 1 {
		return model.Booking{}, errors.Wrap(errs.ErrInvalidInput, "booking duration must be at least 1 day")
	}

	booking, err := s.bookings.Create(ctx, model.Booking{
		UserUID:    actor.UserUID,
		CarUID:     req.CarUID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: float64(days) * car.PricePerDay,
	})
	if err != nil {
		return model.Booking{}, err
	}
	s.publish("created", booking)
	return booking, nil
}

// Cancel is the only user-initiated transition; only the owner may perform it.
func (s *BookingService) Cancel(ctx context.Context, actor auth.Actor, bookingUID string) (model.Booking, error) {
	booking, err := s.bookings.GetByUID(ctx, bookingUID)
	if err != nil {
		return model.Booking{}, err
	}
	if booking.UserUID != actor.UserUID {
		return model.Booking{}, errors.Wrapf(errs.ErrForbidden,
			"booking %s does not belong to the requesting user", bookingUID)
	}
	if !transitionAllowed(booking.Status, model.BookingCancelled, false) {
		return model.Booking{}, errors.Wrapf(errs.ErrState,
			"booking %s cannot be cancelled as it is already %s", bookingUID, booking.Status)
	}
	updated, err := s.bookings.UpdateStatus(ctx, bookingUID, model.BookingCancelled)
	if err != nil {
		return model.Booking{}, err
	}
	s.publish("cancelled", updated)
	return updated, nil
}

// SetStatus applies an admin transition, subject to the state machine table.
func (s *BookingService) SetStatus(ctx context.Context, actor auth.Actor, bookingUID string, status model.BookingStatus) (model.Booking, error) {
	if !actor.IsAdmin() {
		return model.Booking{}, errors.Wrap(errs.ErrForbidden, "admin role required")
	}
	if !status.Valid() {
		return model.Booking{}, errors.Wrapf(errs.ErrInvalidInput, "unknown status %q", status)
	}
	booking, err := s.bookings.GetByUID(ctx, bookingUID)
	if err != nil {
		return model.Booking{}, err
	}
	if !transitionAllowed(booking.Status, status, true) {
		if booking.Status.Terminal() {
			return model.Booking{}, errors.Wrapf(errs.ErrState,
				"booking %s: cannot change status of a booking that is already %s", bookingUID, booking.Status)
		}
		return model.Booking{}, errors.Wrapf(errs.ErrState,
			"booking %s: cannot change status from %s to %s", bookingUID, booking.Status, status)
	}
	updated, err := s.bookings.UpdateStatus(ctx, bookingUID, status)
	if err != nil {
		return model.Booking{}, err
	}
	s.publish("status-changed", updated)
	return updated, nil
}

func (s *BookingService) ListByUser(ctx context.Context, actor auth.Actor) ([]model.BookingDetails, error) {
	return s.bookings.ListByUser(ctx, actor.UserUID)
}

func (s *BookingService) List(ctx context.Context, filter model.BookingFilter, page, size int, sort model.BookingSort) (model.ListBookings, error) {
	return s.bookings.List(ctx, filter, page, size, sort)
}

func (s *BookingService) publish(event string, booking model.Booking) {
	err := s.enqueuer.Enqueue(kafka.BookingTopic, kafka.BookingEvent{
		Event:      event,
		BookingUID: booking.BookingUID,
		CarUID:     booking.CarUID,
		UserUID:    booking.UserUID,
		Status:     string(booking.Status),
		At:         time.Now().UTC(),
	})
	if err != nil {
		s.log.Warn("enqueue booking event", zap.String("event", event), zap.Error(err))
	}
}
