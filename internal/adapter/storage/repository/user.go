package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopease/backend/internal/core/domain"
)

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Insert("users").
		Columns("email", "password", "name", "role").
		Values(user.Email, user.Password, user.Name, user.Role).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "email", "password", "name", "role").
		From("users").
		Where(sq.Eq{"email": email})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.Role,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repository) ListUsers(ctx context.Context, emailQuery string) ([]*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "email", "password", "name", "role").
		From("users").
		OrderBy("id")
	if emailQuery != "" {
		statement = statement.Where(sq.ILike{"email": "%" + emailQuery + "%"})
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.User, 0)
	for rows.Next() {
		user := domain.User{}
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Password,
			&user.Name,
			&user.Role,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &user)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateUserRole(ctx context.Context, userID uint64, role domain.UserRole) error {
	statement := r.db.QueryBuilder.
		Update("users").
		Set("role", role).
		Where(sq.Eq{"id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, userID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("users").
		Where(sq.Eq{"id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}
