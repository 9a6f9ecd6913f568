package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/admin-panel/internal/domain"
)

// FileRepository lists uploaded file metadata. Byte storage is out of scope.
type FileRepository interface {
	List(ctx context.Context, skip, count int) ([]domain.FileRecord, error)
}

type fileRepository struct {
	pool *pgxpool.Pool
}

// NewFileRepository constructs repository.
func NewFileRepository(pool *pgxpool.Pool) FileRepository {
	return &fileRepository{pool: pool}
}

func (r *fileRepository) List(ctx context.Context, skip, count int) ([]domain.FileRecord, error) {
	const query = `
        SELECT id, name, size_bytes, storage_key, uploaded_at
        FROM files ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, count, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.FileRecord
	for rows.Next() {
		var record domain.FileRecord
		if err := rows.Scan(&record.ID, &record.Name, &record.SizeBytes, &record.StorageKey, &record.UploadedAt); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
