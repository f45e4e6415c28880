package repo

import (
	"context"

	"aidhub/internal/domain"
	"aidhub/internal/infra"
	"aidhub/internal/sqlinline"
)

// StatsRepositoryPG computes dashboard counters in a single statement.
type StatsRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewStatsRepository(sql infra.SQLExecutor) *StatsRepositoryPG {
	return &StatsRepositoryPG{sql: sql}
}

func (r *StatsRepositoryPG) Summary(ctx context.Context) (*domain.Stats, error) {
	var s domain.Stats
	err := r.sql.QueryRow(ctx, sqlinline.QStatsSummary).Scan(
		&s.Requesters, &s.Volunteers, &s.AwaitingVolunteer, &s.InProgress, &s.Done, &s.Cancelled,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

var _ domain.StatsRepository = (*StatsRepositoryPG)(nil)
