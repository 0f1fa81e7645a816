package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/YOUNSSBOSS/car-rent/internal/errs"
	"github.com/YOUNSSBOSS/car-rent/internal/model"
)

const carsTableName = `cars`

type carRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func newCarRepository(db *sqlx.DB, log *zap.Logger) *carRepository {
	return &carRepository{
		db:  db,
		log: log.Named("car-repo"),
	}
}

var carColumns = []string{"id", "car_uid", "make", "model", "year", "price_per_day", "status", "image_url", "features", "created_at"}

func (r *carRepository) Create(ctx context.Context, car model.Car) (model.Car, error) {
	q, args, err := qb.Insert(carsTableName).
		Columns("car_uid", "make", "model", "year", "price_per_day", "status", "image_url", "features").
		Values(uuid.New(), car.Make, car.Model, car.Year, car.PricePerDay, car.Status, car.ImageURL, car.Features).
		Suffix("returning " + columnList(carColumns)).
		ToSql()
	if err != nil {
		return model.Car{}, err
	}
	var created model.Car
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		r.log.Error("Create", zap.String("q", q), zap.Error(err))
		return model.Car{}, err
	}
	return created, nil
}

func (r *carRepository) GetByUID(ctx context.Context, carUID string) (model.Car, error) {
	q, args, err := qb.Select(carColumns...).
		From(carsTableName).
		Where(sq.Eq{"car_uid": carUID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Car{}, err
	}
	var car model.Car
	if err := r.db.GetContext(ctx, &car, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Car{}, errors.Wrap(errs.ErrNotFound, "car")
		}
		return model.Car{}, err
	}
	return car, nil
}

func (r *carRepository) List(ctx context.Context, filter model.CarFilter) ([]model.Car, error) {
	q := qb.Select(carColumns...).
		From(carsTableName).
		OrderBy("created_at desc")

	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"make": pattern},
			sq.ILike{"model": pattern},
		})
	}
	if filter.MinPrice != nil {
		q = q.Where(sq.GtOrEq{"price_per_day": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		q = q.Where(sq.LtOrEq{"price_per_day": *filter.MaxPrice})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	cars := make([]model.Car, 0)
	if err := r.db.SelectContext(ctx, &cars, query, args...); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *carRepository) Update(ctx context.Context, car model.Car) (model.Car, error) {
	q, args, err := qb.Update(carsTableName).
		Set("make", car.Make).
		Set("model", car.Model).
		Set("year", car.Year).
		Set("price_per_day", car.PricePerDay).
		Set("status", car.Status).
		Set("image_url", car.ImageURL).
		Set("features", car.Features).
		Where(sq.Eq{"car_uid": car.CarUID}).
		Suffix("returning " + columnList(carColumns)).
		ToSql()
	if err != nil {
		return model.Car{}, err
	}
	var updated model.Car
	if err := r.db.GetContext(ctx, &updated, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Car{}, errors.Wrap(errs.ErrNotFound, "car")
		}
		return model.Car{}, err
	}
	return updated, nil
}

func (r *carRepository) Delete(ctx context.Context, carUID string) error {
	q, args, err := qb.Delete(carsTableName).
		Where(sq.Eq{"car_uid": carUID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		if pgErrCode(err, pgerrcode.ForeignKeyViolation) {
			return errors.Wrap(errs.ErrConflict, "car has bookings")
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Wrap(errs.ErrNotFound, "car")
	}
	return nil
}

func (r *carRepository) CountByStatus(ctx context.Context) (model.CarStats, error) {
	q := `
	select count(*)                                      as total,
	       count(*) filter (where status = 'available')  as available,
	       count(*) filter (where status = 'booked')     as booked,
	       count(*) filter (where status = 'maintenance') as maintenance
	from cars
`
	var stats model.CarStats
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return model.CarStats{}, err
	}
	return stats, nil
}
