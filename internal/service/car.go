package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/YOUNSSBOSS/car-rent/internal/errs"
	"github.com/YOUNSSBOSS/car-rent/internal/model"
	"github.com/YOUNSSBOSS/car-rent/internal/repository"
)

type CarService struct {
	log      *zap.Logger
	cars     repository.CarRepository
	bookings repository.BookingRepository
}

func NewCarService(cars repository.CarRepository, bookings repository.BookingRepository, log *zap.Logger) *CarService {
	return &CarService{
		log:      log.Named("car"),
		cars:     cars,
		bookings: bookings,
	}
}

func maxCarYear() int {
	return time.Now().Year() + 1
}

func (s *CarService) Create(ctx context.Context, req model.CreateCarRequest) (model.Car, error) {
	if req.Year > maxCarYear() {
		return model.Car{}, errors.Wrapf(errs.ErrInvalidInput, "year cannot be more than %d", maxCarYear())
	}
	status := req.Status
	if status == "" {
		status = model.CarAvailable
	}
	return s.cars.Create(ctx, model.Car{
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		PricePerDay: req.PricePerDay,
		Status:      status,
		ImageURL:    req.ImageURL,
		Features:    req.Features,
	})
}

func (s *CarService) Get(ctx context.Context, carUID string) (model.Car, error) {
	return s.cars.GetByUID(ctx, carUID)
}

func (s *CarService) List(ctx context.Context, filter model.CarFilter) ([]model.Car, error) {
	return s.cars.List(ctx, filter)
}

func (s *CarService) Update(ctx context.Context, carUID string, req model.UpdateCarRequest) (model.Car, error) {
	car, err := s.cars.GetByUID(ctx, carUID)
	if err != nil {
		return model.Car{}, err
	}
	if req.Make != nil {
		car.Make = *req.Make
	}
	if req.Model != nil {
		car.Model = *req.Model
	}
	if req.Year != nil {
		if *req.Year < 1900 || *req.Year > maxCarYear() {
			return model.Car{}, errors.Wrapf(errs.ErrInvalidInput, "year must be between 1900 and %d", maxCarYear())
		}
		car.Year = *req.Year
	}
	if req.PricePerDay != nil {
		if *req.PricePerDay < 0 {
			return model.Car{}, errors.Wrap(errs.ErrInvalidInput, "price per day cannot be negative")
		}
		car.PricePerDay = *req.PricePerDay
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return model.Car{}, errors.Wrapf(errs.ErrInvalidInput, "unknown car status %q", *req.Status)
		}
		car.Status = *req.Status
	}
	if req.ImageURL != nil {
		car.ImageURL = req.ImageURL
	}
	if req.Features != nil {
		car.Features = *req.Features
	}
	return s.cars.Update(ctx, car)
}

// Delete is restricted while active bookings reference the car; terminal
// booking history also blocks it through the foreign key, keeping bookings
// free of dangling car references.
func (s *CarService) Delete(ctx context.Context, carUID string) error {
	active, err := s.bookings.HasActiveByCar(ctx, carUID)
	if err != nil {
		return err
	}
	if active {
		return errors.Wrapf(errs.ErrState, "car %s has active bookings", carUID)
	}
	return s.cars.Delete(ctx, carUID)
}
