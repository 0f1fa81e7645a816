package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/YOUNSSBOSS/car-rent/internal/errs"
	"github.com/YOUNSSBOSS/car-rent/internal/model"
	repo_mocks "github.com/YOUNSSBOSS/car-rent/internal/repository/mocks"
	"github.com/YOUNSSBOSS/car-rent/internal/service"
)

func newCarService(t *testing.T) (*service.CarService, *repo_mocks.MockCarRepository, *repo_mocks.MockBookingRepository) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	cars := repo_mocks.NewMockCarRepository(c)
	bookings := repo_mocks.NewMockBookingRepository(c)
	return service.NewCarService(cars, bookings, zap.NewExample().Named("test")), cars, bookings
}

func TestCarService_Create(t *testing.T) {
	t.Parallel()

	t.Run("defaults to available", func(t *testing.T) {
		t.Parallel()
		svc, cars, _ := newCarService(t)
		ctx := context.Background()
		cars.EXPECT().Create(ctx, gomock.AssignableToTypeOf(model.Car{})).
			DoAndReturn(func(_ context.Context, car model.Car) (model.Car, error) {
				require.Equal(t, model.CarAvailable, car.Status)
				car.CarUID = testCarUID
				return car, nil
			})

		car, err := svc.Create(ctx, model.CreateCarRequest{
			Make:        "Kia",
			Model:       "Rio",
			Year:        2021,
			PricePerDay: 45,
		})
		require.NoError(t, err)
		require.Equal(t, testCarUID, car.CarUID)
	})

	t.Run("year too far in the future", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newCarService(t)

		_, err := svc.Create(context.Background(), model.CreateCarRequest{
			Make:        "Kia",
			Model:       "Rio",
			Year:        time.Now().Year() + 2,
			PricePerDay: 45,
		})
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestCarService_Update(t *testing.T) {
	t.Parallel()
	existing := model.Car{
		CarUID:      testCarUID,
		Make:        "Kia",
		Model:       "Rio",
		Year:        2021,
		PricePerDay: 45,
		Status:      model.CarAvailable,
	}

	t.Run("applies only set fields", func(t *testing.T) {
		t.Parallel()
		svc, cars, _ := newCarService(t)
		ctx := context.Background()
		price := 55.0
		status := model.CarMaintenance

		cars.EXPECT().GetByUID(ctx, testCarUID).Return(existing, nil)
		cars.EXPECT().Update(ctx, gomock.AssignableToTypeOf(model.Car{})).
			DoAndReturn(func(_ context.Context, car model.Car) (model.Car, error) {
				require.Equal(t, "Kia", car.Make)
				require.Equal(t, price, car.PricePerDay)
				require.Equal(t, model.CarMaintenance, car.Status)
				return car, nil
			})

		_, err := svc.Update(ctx, testCarUID, model.UpdateCarRequest{
			PricePerDay: &price,
			Status:      &status,
		})
		require.NoError(t, err)
	})

	t.Run("negative price", func(t *testing.T) {
		t.Parallel()
		svc, cars, _ := newCarService(t)
		ctx := context.Background()
		price := -1.0

		cars.EXPECT().GetByUID(ctx, testCarUID).Return(existing, nil)

		_, err := svc.Update(ctx, testCarUID, model.UpdateCarRequest{PricePerDay: &price})
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("unknown status", func(t *testing.T) {
		t.Parallel()
		svc, cars, _ := newCarService(t)
		ctx := context.Background()
		status := model.CarStatus("parked")

		cars.EXPECT().GetByUID(ctx, testCarUID).Return(existing, nil)

		_, err := svc.Update(ctx, testCarUID, model.UpdateCarRequest{Status: &status})
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestCarService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, cars, bookings := newCarService(t)
		ctx := context.Background()
		bookings.EXPECT().HasActiveByCar(ctx, testCarUID).Return(false, nil)
		cars.EXPECT().Delete(ctx, testCarUID).Return(nil)

		require.NoError(t, svc.Delete(ctx, testCarUID))
	})

	t.Run("blocked by active bookings", func(t *testing.T) {
		t.Parallel()
		svc, _, bookings := newCarService(t)
		ctx := context.Background()
		bookings.EXPECT().HasActiveByCar(ctx, testCarUID).Return(true, nil)

		require.ErrorIs(t, svc.Delete(ctx, testCarUID), errs.ErrState)
	})
}
