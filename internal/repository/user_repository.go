package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/admin-panel/internal/domain"
)

// UserRepository defines persistence access for platform accounts.
type UserRepository interface {
	List(ctx context.Context, skip, count int) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, user_name, email, bio, role, real_name, phone, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.UserName,
		&user.Email,
		&user.Bio,
		&user.Role,
		&user.RealName,
		&user.Phone,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, skip, count int) ([]domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM users ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, count, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *user)
	}
	return result, rows.Err()
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM users WHERE id=$1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM users WHERE user_name=$1`
	return scanUser(r.pool.QueryRow(ctx, query, userName))
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET user_name=$1, email=$2, bio=$3, role=$4, real_name=$5, phone=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		user.UserName,
		user.Email,
		user.Bio,
		user.Role,
		user.RealName,
		user.Phone,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM users WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
