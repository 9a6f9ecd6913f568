package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/admin-panel/internal/domain"
)

// LogRepository persists and lists audit log entries.
type LogRepository interface {
	Insert(ctx context.Context, entry *domain.LogEntry) error
	List(ctx context.Context, skip, count int, level domain.LogLevel) ([]domain.LogEntry, error)
}

type logRepository struct {
	pool *pgxpool.Pool
}

// NewLogRepository constructs repository.
func NewLogRepository(pool *pgxpool.Pool) LogRepository {
	return &logRepository{pool: pool}
}

func (r *logRepository) Insert(ctx context.Context, entry *domain.LogEntry) error {
	const query = `
        INSERT INTO logs (time, level, actor, remote_ip, message)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		entry.Time,
		entry.Level,
		entry.Actor,
		entry.RemoteIP,
		entry.Message,
	).Scan(&entry.ID)
}

// List returns entries newest first. The All sentinel disables the level
// filter.
func (r *logRepository) List(ctx context.Context, skip, count int, level domain.LogLevel) ([]domain.LogEntry, error) {
	const base = `
        SELECT id, time, level, actor, remote_ip, message
        FROM logs`

	var (
		query string
		args  []any
	)
	if level == domain.LogLevelAll {
		query = base + ` ORDER BY id DESC LIMIT $1 OFFSET $2`
		args = []any{count, skip}
	} else {
		query = base + ` WHERE level=$1 ORDER BY id DESC LIMIT $2 OFFSET $3`
		args = []any{level, count, skip}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LogEntry
	for rows.Next() {
		var entry domain.LogEntry
		if err := rows.Scan(&entry.ID, &entry.Time, &entry.Level, &entry.Actor, &entry.RemoteIP, &entry.Message); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
