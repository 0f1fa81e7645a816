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

const usersTableName = `users`

type userRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func newUserRepository(db *sqlx.DB, log *zap.Logger) *userRepository {
	return &userRepository{
		db:  db,
		log: log.Named("user-repo"),
	}
}

var userColumns = []string{"id", "user_uid", "username", "email", "password_hash", "role", "created_at"}

func (r *userRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("user_uid", "username", "email", "password_hash", "role").
		Values(uuid.New(), user.Username, user.Email, user.PasswordHash, user.Role).
		Suffix("returning " + columnList(userColumns)).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var created model.User
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		if pgErrCode(err, pgerrcode.UniqueViolation) {
			return model.User{}, errors.Wrap(errs.ErrConflict, "username or email already taken")
		}
		return model.User{}, err
	}
	return created, nil
}

func (r *userRepository) GetByUID(ctx context.Context, userUID string) (model.User, error) {
	return r.getWhere(ctx, sq.Eq{"user_uid": userUID})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getWhere(ctx, sq.Eq{"email": email})
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getWhere(ctx, sq.Eq{"username": username})
}

func (r *userRepository) getWhere(ctx context.Context, pred sq.Eq) (model.User, error) {
	q, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errors.Wrap(errs.ErrNotFound, "user")
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userUID, passwordHash string) error {
	q, args, err := qb.Update(usersTableName).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"user_uid": userUID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Wrap(errs.ErrNotFound, "user")
	}
	return nil
}

func (r *userRepository) CountByRole(ctx context.Context) (model.UserStats, error) {
	q := `
	select count(*)                               as total,
	       count(*) filter (where role = 'admin') as admins
	from users
`
	var stats model.UserStats
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return model.UserStats{}, err
	}
	return stats, nil
}
