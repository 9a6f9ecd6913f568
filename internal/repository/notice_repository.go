package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/admin-panel/internal/domain"
)

// NoticeRepository manages persistence for platform notices.
type NoticeRepository interface {
	Create(ctx context.Context, notice *domain.Notice) error
	Update(ctx context.Context, notice *domain.Notice) error
	GetByID(ctx context.Context, id int64) (*domain.Notice, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Notice, error)
}

type noticeRepository struct {
	pool *pgxpool.Pool
}

// NewNoticeRepository constructs repository.
func NewNoticeRepository(pool *pgxpool.Pool) NoticeRepository {
	return &noticeRepository{pool: pool}
}

func (r *noticeRepository) Create(ctx context.Context, notice *domain.Notice) error {
	const query = `
        INSERT INTO notices (title, content, is_pinned, time)
        VALUES ($1,$2,$3,$4)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		notice.Title,
		notice.Content,
		notice.IsPinned,
		notice.Time,
	).Scan(&notice.ID)
}

func (r *noticeRepository) Update(ctx context.Context, notice *domain.Notice) error {
	const query = `
        UPDATE notices SET title=$1, content=$2, is_pinned=$3, time=$4
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		notice.Title,
		notice.Content,
		notice.IsPinned,
		notice.Time,
		notice.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *noticeRepository) GetByID(ctx context.Context, id int64) (*domain.Notice, error) {
	const query = `
        SELECT id, title, content, is_pinned, time
        FROM notices WHERE id=$1`
	var notice domain.Notice
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&notice.ID,
		&notice.Title,
		&notice.Content,
		&notice.IsPinned,
		&notice.Time,
	); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (r *noticeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM notices WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// List returns all notices pinned first, newest first; the same order the
// client's display policy produces.
func (r *noticeRepository) List(ctx context.Context) ([]domain.Notice, error) {
	const query = `
        SELECT id, title, content, is_pinned, time
        FROM notices ORDER BY is_pinned DESC, time DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Notice
	for rows.Next() {
		var notice domain.Notice
		if err := rows.Scan(&notice.ID, &notice.Title, &notice.Content, &notice.IsPinned, &notice.Time); err != nil {
			return nil, err
		}
		result = append(result, notice)
	}
	return result, rows.Err()
}
