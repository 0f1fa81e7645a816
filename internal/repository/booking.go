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

const bookingsTableName = `bookings`

type bookingRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func newBookingRepository(db *sqlx.DB, log *zap.Logger) *bookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.Named("booking-repo"),
	}
}

var bookingColumns = []string{"id", "booking_uid", "user_uid", "car_uid", "start_date", "end_date", "total_price", "status", "created_at"}

const bookingDetailsQuery = `
	select b.id, b.booking_uid, b.user_uid, b.car_uid, b.start_date, b.end_date,
	       b.total_price, b.status, b.created_at,
	       u.username, c.make as car_make, c.model as car_model
	from bookings b
	         join users u on u.user_uid = b.user_uid
	         join cars c on c.car_uid = b.car_uid`

func (r *bookingRepository) Create(ctx context.Context, booking model.Booking) (model.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Booking{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	// Serialize concurrent creates for the same car.
	var carID int
	if err := tx.QueryRowContext(ctx,
		`select id from cars where car_uid = $1 for update`, booking.CarUID,
	).Scan(&carID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errors.Wrap(errs.ErrNotFound, "car")
		}
		return model.Booking{}, err
	}

	var conflict bool
	if err := tx.QueryRowContext(ctx, `
	select exists(
	    select 1 from bookings
	    where car_uid = $1
	      and status in ('pending', 'confirmed')
	      and start_date < $3 and end_date > $2
	)`, booking.CarUID, booking.StartDate, booking.EndDate,
	).Scan(&conflict); err != nil {
		return model.Booking{}, err
	}
	if conflict {
		return model.Booking{}, errors.Wrapf(errs.ErrConflict,
			"car %s is already booked for %s..%s",
			booking.CarUID, booking.StartDate.Format("2006-01-02"), booking.EndDate.Format("2006-01-02"))
	}

	q, args, err := qb.Insert(bookingsTableName).
		Columns("booking_uid", "user_uid", "car_uid", "start_date", "end_date", "total_price", "status").
		Values(uuid.New(), booking.UserUID, booking.CarUID, booking.StartDate, booking.EndDate, booking.TotalPrice, model.BookingPending).
		Suffix("returning " + columnList(bookingColumns)).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var created model.Booking
	if err := tx.GetContext(ctx, &created, q, args...); err != nil {
		// The exclusion constraint backs the check above at commit time.
		if pgErrCode(err, pgerrcode.ExclusionViolation) {
			return model.Booking{}, errors.Wrapf(errs.ErrConflict,
				"car %s is already booked for the selected dates", booking.CarUID)
		}
		if pgErrCode(err, pgerrcode.ForeignKeyViolation) {
			return model.Booking{}, errors.Wrap(errs.ErrNotFound, "user or car")
		}
		r.log.Error("Create", zap.String("q", q), zap.Error(err))
		return model.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, err
	}
	return created, nil
}

func (r *bookingRepository) GetByUID(ctx context.Context, bookingUID string) (model.Booking, error) {
	q, args, err := qb.Select(bookingColumns...).
		From(bookingsTableName).
		Where(sq.Eq{"booking_uid": bookingUID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var booking model.Booking
	if err := r.db.GetContext(ctx, &booking, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errors.Wrap(errs.ErrNotFound, "booking")
		}
		return model.Booking{}, err
	}
	return booking, nil
}

func (r *bookingRepository) FindOverlapping(ctx context.Context, carUID string, start, end model.Date, statuses []model.BookingStatus) ([]model.Booking, error) {
	q, args, err := qb.Select(bookingColumns...).
		From(bookingsTableName).
		Where(sq.Eq{"car_uid": carUID}).
		Where(sq.Eq{"status": statuses}).
		Where(sq.Lt{"start_date": end}).
		Where(sq.Gt{"end_date": start}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var bookings []model.Booking
	if err := r.db.SelectContext(ctx, &bookings, q, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) HasActiveByCar(ctx context.Context, carUID string) (bool, error) {
	q := `
	select exists(
	    select 1 from bookings
	    where car_uid = $1 and status in ('pending', 'confirmed')
	)`
	var active bool
	if err := r.db.QueryRowContext(ctx, q, carUID).Scan(&active); err != nil {
		return false, err
	}
	return active, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userUID string) ([]model.BookingDetails, error) {
	q := bookingDetailsQuery + `
	where b.user_uid = $1
	order by b.start_date desc`
	items := make([]model.BookingDetails, 0)
	if err := r.db.SelectContext(ctx, &items, q, userUID); err != nil {
		return nil, err
	}
	return items, nil
}

var bookingSortColumns = map[string]string{
	"created_at":  "b.created_at",
	"start_date":  "b.start_date",
	"total_price": "b.total_price",
}

func (r *bookingRepository) List(ctx context.Context, filter model.BookingFilter, page, size int, sort model.BookingSort) (model.ListBookings, error) {
	q := qb.Select("b.id", "b.booking_uid", "b.user_uid", "b.car_uid", "b.start_date", "b.end_date",
		"b.total_price", "b.status", "b.created_at",
		"u.username", "c.make as car_make", "c.model as car_model").
		From(bookingsTableName + " b").
		Join("users u on u.user_uid = b.user_uid").
		Join("cars c on c.car_uid = b.car_uid")

	count := qb.Select("count(*)").From(bookingsTableName + " b")

	if filter.Status != "" {
		q = q.Where(sq.Eq{"b.status": filter.Status})
		count = count.Where(sq.Eq{"b.status": filter.Status})
	}
	if filter.UserUID != "" {
		q = q.Where(sq.Eq{"b.user_uid": filter.UserUID})
		count = count.Where(sq.Eq{"b.user_uid": filter.UserUID})
	}
	if filter.CarUID != "" {
		q = q.Where(sq.Eq{"b.car_uid": filter.CarUID})
		count = count.Where(sq.Eq{"b.car_uid": filter.CarUID})
	}

	col, ok := bookingSortColumns[sort.By]
	if !ok {
		col = "b.created_at"
	}
	order := "desc"
	if sort.Order == "asc" {
		order = "asc"
	}
	q = q.OrderBy(col + " " + order)

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBookings{}, err
	}
	items := make([]model.BookingDetails, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListBookings{}, err
	}

	countQuery, countArgs, err := count.ToSql()
	if err != nil {
		return model.ListBookings{}, err
	}
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return model.ListBookings{}, err
	}

	return model.ListBookings{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: items,
	}, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingUID string, status model.BookingStatus) (model.Booking, error) {
	q, args, err := qb.Update(bookingsTableName).
		Set("status", status).
		Where(sq.Eq{"booking_uid": bookingUID}).
		Suffix("returning " + columnList(bookingColumns)).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var updated model.Booking
	if err := r.db.GetContext(ctx, &updated, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errors.Wrap(errs.ErrNotFound, "booking")
		}
		if pgErrCode(err, pgerrcode.ExclusionViolation) {
			return model.Booking{}, errors.Wrap(errs.ErrConflict, "another active booking overlaps")
		}
		return model.Booking{}, err
	}
	return updated, nil
}

func (r *bookingRepository) CountByStatus(ctx context.Context) (model.BookingStats, error) {
	q := `
	select count(*)                                    as total,
	       count(*) filter (where status = 'pending')   as pending,
	       count(*) filter (where status = 'confirmed') as confirmed,
	       count(*) filter (where status = 'declined')  as declined,
	       count(*) filter (where status = 'cancelled') as cancelled,
	       count(*) filter (where status = 'completed') as completed
	from bookings
`
	var stats model.BookingStats
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return model.BookingStats{}, err
	}
	return stats, nil
}

func (r *bookingRepository) ListRecent(ctx context.Context, n int) ([]model.BookingDetails, error) {
	q := bookingDetailsQuery + `
	order by b.created_at desc
	limit $1`
	items := make([]model.BookingDetails, 0, n)
	if err := r.db.SelectContext(ctx, &items, q, n); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *bookingRepository) SumPriceWhere(ctx context.Context, status model.BookingStatus) (float64, error) {
	q := `
	select coalesce(sum(total_price), 0) from bookings
	where status = $1
`
	var sum float64
	if err := r.db.QueryRowContext(ctx, q, status).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}
