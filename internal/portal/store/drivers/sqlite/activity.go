package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/aussiebroadwan/carebridge/internal/portal/store/drivers/sqlite/gen"
)

type activityRepo struct {
	q *gen.Queries
}

func (r *activityRepo) RecordActivity(ctx context.Context, a domain.Activity) error {
	created := a.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	return r.q.CreateActivity(ctx, gen.CreateActivityParams{
		ID:          a.ID,
		Kind:        string(a.Kind),
		Address:     a.Address,
		Status:      string(a.Status),
		Stage:       string(a.Stage),
		FailureKind: mapStringNull(string(a.FailureKind)),
		Title:       a.Title,
		Message:     a.Message,
		TxHash:      mapStringNull(a.TxHash),
		BlockNumber: int64(a.BlockNumber),
		Detail:      mapStringNull(a.Detail),
		CreatedAt:   created.UnixMilli(),
	})
}

func (r *activityRepo) GetActivity(ctx context.Context, id string) (domain.Activity, error) {
	row, err := r.q.GetActivityByID(ctx, id)
	if err != nil {
		return domain.Activity{}, mapNotFound(err)
	}
	return mapActivity(row), nil
}

func (r *activityRepo) ListActivityByAddress(ctx context.Context, address string, limit int) ([]domain.Activity, error) {
	rows, err := r.q.ListActivityByAddress(ctx, gen.ListActivityByAddressParams{
		Address: address,
		Limit:   int64(limit),
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Activity, len(rows))
	for i, row := range rows {
		out[i] = mapActivity(row)
	}
	return out, nil
}

func (r *activityRepo) DeleteActivityBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.q.DeleteActivityBefore(ctx, cutoff.UnixMilli())
}

func (r *activityRepo) CountActivity(ctx context.Context) (int64, error) {
	return r.q.CountActivity(ctx)
}
