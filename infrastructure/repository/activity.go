package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/salesflow/metrics-api/infrastructure/database/postgres"
)

const (
	activitiesTable = "activities a"
)

type ActivityRepository interface {
	// CountPending conta as atividades não concluídas do usuário agendadas
	// a partir de now
	CountPending(ctx context.Context, userID int, now time.Time) (int, error)
}

type activityRepository struct {
	conn postgres.Queryer
}

func NewActivityRepository(conn postgres.Queryer) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

func (r *activityRepository) CountPending(ctx context.Context, userID int, now time.Time) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(activitiesTable).
		Where(squirrel.Eq{"a.user_id": userID, "a.completed": false}).
		Where(squirrel.GtOrEq{"a.scheduled_at": now}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	row := r.conn.QueryRow(ctx, sqlQuery, args...)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao escanear contagem de atividades: %w", err)
	}

	return count, nil
}
