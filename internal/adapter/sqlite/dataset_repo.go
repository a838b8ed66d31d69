package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"waterlog/internal/domain"
)

var _ domain.DatasetRepository = (*DB)(nil)

type recordRow struct {
	Seq            int64           `db:"seq"`
	Day            string          `db:"day"`
	MouseID        string          `db:"mouse_id"`
	Condition      string          `db:"condition"`
	Weight         float64         `db:"weight"`
	WaterCollected sql.NullFloat64 `db:"water_collected"`
	SuggestedWater sql.NullFloat64 `db:"suggested_water"`
}

// Load returns all records in insertion order.
func (d *DB) Load(ctx context.Context) ([]domain.Record, error) {
	var rows []recordRow
	err := d.sql.SelectContext(ctx, &rows,
		"SELECT seq, day, mouse_id, condition, weight, water_collected, suggested_water FROM records ORDER BY seq;")
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	out := make([]domain.Record, 0, len(rows))
	for _, r := range rows {
		cond, err := domain.ParseCondition(r.Condition)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", r.Seq, err)
		}
		rec := domain.Record{
			Day:              r.Day,
			SubjectID:        domain.SubjectID(r.MouseID),
			Condition:        cond,
			WeightG:          r.Weight,
			WaterCollectedML: fromNull(r.WaterCollected),
			SuggestedWaterML: fromNull(r.SuggestedWater),
		}
		if err := domain.ValidateRecord(rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", r.Seq, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Save replaces every stored record in one transaction.
func (d *DB) Save(ctx context.Context, records []domain.Record) (retErr error) {
	tx, err := d.sql.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records;"); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	stmt, err := tx.PrepareNamedContext(ctx,
		`INSERT INTO records(seq, day, mouse_id, condition, weight, water_collected, suggested_water)
		 VALUES(:seq, :day, :mouse_id, :condition, :weight, :water_collected, :suggested_water);`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range records {
		row := recordRow{
			Seq:            int64(i + 1),
			Day:            r.Day,
			MouseID:        r.SubjectID.String(),
			Condition:      r.Condition.String(),
			Weight:         r.WeightG,
			WaterCollected: toNull(r.WaterCollectedML),
			SuggestedWater: toNull(r.SuggestedWaterML),
		}
		if _, err := stmt.ExecContext(ctx, row); err != nil {
			return fmt.Errorf("insert record %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func toNull(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func fromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return domain.Float(v.Float64)
}
