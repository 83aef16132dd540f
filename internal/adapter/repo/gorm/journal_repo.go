package gormrepo

import (
	"context"
	"encoding/json"

	"stratagem/internal/adapter/repo/gorm/model"
	"stratagem/internal/domain/decision"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JournalRepo struct {
	db *gorm.DB
}

func NewJournalRepo(db *gorm.DB) JournalRepo {
	return JournalRepo{db: db}
}

func (r JournalRepo) Append(ctx context.Context, record decision.CycleRecord) error {
	var outcomes []byte
	if len(record.Outcomes) > 0 {
		b, err := json.Marshal(record.Outcomes)
		if err != nil {
			return err
		}
		outcomes = b
	}
	row := model.DecisionCycle{
		StartedAt:    record.StartedAt,
		State:        string(record.State),
		DeferReason:  record.DeferReason,
		GateTrigger:  record.GateTrigger,
		OracleCalled: record.OracleCalled,
		Outcomes:     outcomes,
		DurationMS:   record.DurationMS,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r JournalRepo) ListRecent(ctx context.Context, limit int) ([]decision.CycleRecord, error) {
	rows := []model.DecisionCycle{}
	query := r.db.WithContext(ctx).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "started_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]decision.CycleRecord, 0, len(rows))
	for _, row := range rows {
		record := decision.CycleRecord{
			StartedAt:    row.StartedAt,
			State:        decision.CycleState(row.State),
			DeferReason:  row.DeferReason,
			GateTrigger:  row.GateTrigger,
			OracleCalled: row.OracleCalled,
			DurationMS:   row.DurationMS,
		}
		if len(row.Outcomes) > 0 {
			if err := json.Unmarshal(row.Outcomes, &record.Outcomes); err != nil {
				return nil, err
			}
		}
		out = append(out, record)
	}
	return out, nil
}
