package gormrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"guildhall/internal/app/ports"
)

// UnlockEventRepo persists published unlock events. It implements both the
// event publisher port (one event per publish) and the listing side used by
// the ops endpoint.
type UnlockEventRepo struct {
	db *gorm.DB
}

func NewUnlockEventRepo(db *gorm.DB) UnlockEventRepo {
	return UnlockEventRepo{db: db}
}

func (r UnlockEventRepo) Append(ctx context.Context, events []ports.GateUnlockedEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]unlockEventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, unlockEventRow{
			EventID:    e.EventID,
			GateID:     e.GateID,
			GateType:   e.GateType,
			GateName:   e.GateName,
			OccurredAt: e.OccurredAt,
		})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r UnlockEventRepo) ListRecent(ctx context.Context, limit int) ([]ports.GateUnlockedEvent, error) {
	rows := []unlockEventRow{}
	query := r.db.WithContext(ctx).Clauses(clause.OrderBy{
		Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}, Desc: true}},
	})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ports.GateUnlockedEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.GateUnlockedEvent{
			EventID:    row.EventID,
			EventType:  ports.EventTypeGateUnlocked,
			GateID:     row.GateID,
			GateType:   row.GateType,
			GateName:   row.GateName,
			OccurredAt: row.OccurredAt,
		})
	}
	return out, nil
}

func (r UnlockEventRepo) Publish(ctx context.Context, event ports.GateUnlockedEvent) error {
	return r.Append(ctx, []ports.GateUnlockedEvent{event})
}

var (
	_ ports.UnlockEventRepository = UnlockEventRepo{}
	_ ports.EventPublisher        = UnlockEventRepo{}
)
