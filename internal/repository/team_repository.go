package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/admin-panel/internal/domain"
)

// TeamRepository exposes read access to competition teams. The admin panel
// never mutates teams.
type TeamRepository interface {
	List(ctx context.Context, skip, count int) ([]domain.Team, error)
}

type teamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository constructs repository.
func NewTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &teamRepository{pool: pool}
}

func (r *teamRepository) List(ctx context.Context, skip, count int) ([]domain.Team, error) {
	const query = `
        SELECT t.id, t.name, t.bio, t.avatar_url, t.locked, t.created_at, t.updated_at,
               COALESCE(ARRAY_AGG(m.user_id::text) FILTER (WHERE m.user_id IS NOT NULL), '{}')
        FROM teams t
        LEFT JOIN team_members m ON m.team_id = t.id
        GROUP BY t.id
        ORDER BY t.id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, count, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.Bio,
			&team.AvatarURL,
			&team.Locked,
			&team.CreatedAt,
			&team.UpdatedAt,
			&team.MemberIDs,
		); err != nil {
			return nil, err
		}
		result = append(result, team)
	}
	return result, rows.Err()
}
