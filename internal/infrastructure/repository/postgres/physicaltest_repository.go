package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/canterahq/cantera/internal/domain/physicaltest"
	qb "github.com/canterahq/cantera/internal/platform/querybuilder"
)

var physicalTestColumns = []string{
	"id", "tenant_id", "player_id", "tested_on", "evaluator", "height_cm",
	"weight_kg", "sprint_30m_s", "agility_s", "endurance_level",
	"strength_score", "technical_score", "observations", "created_at", "updated_at",
}

type physicalTestTableModel struct {
	ID             string    `db:"id"`
	TenantID       string    `db:"tenant_id"`
	PlayerID       string    `db:"player_id"`
	TestedOn       time.Time `db:"tested_on"`
	Evaluator      string    `db:"evaluator"`
	HeightCM       float64   `db:"height_cm"`
	WeightKG       float64   `db:"weight_kg"`
	Sprint30mS     float64   `db:"sprint_30m_s"`
	AgilityS       float64   `db:"agility_s"`
	EnduranceLevel int       `db:"endurance_level"`
	StrengthScore  float64   `db:"strength_score"`
	TechnicalScore float64   `db:"technical_score"`
	Observations   string    `db:"observations"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func physicalTestFromRow(row physicalTestTableModel) physicaltest.PhysicalTest {
	return physicaltest.PhysicalTest{
		ID:             row.ID,
		TenantID:       row.TenantID,
		PlayerID:       row.PlayerID,
		TestedOn:       row.TestedOn,
		Evaluator:      row.Evaluator,
		HeightCM:       row.HeightCM,
		WeightKG:       row.WeightKG,
		Sprint30mS:     row.Sprint30mS,
		AgilityS:       row.AgilityS,
		EnduranceLevel: row.EnduranceLevel,
		StrengthScore:  row.StrengthScore,
		TechnicalScore: row.TechnicalScore,
		Observations:   row.Observations,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

type PhysicalTestRepository struct {
	db *sqlx.DB
}

func NewPhysicalTestRepository(db *sqlx.DB) *PhysicalTestRepository {
	return &PhysicalTestRepository{db: db}
}

func physicalTestBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(physicalTestColumns...).From("physical_tests")
}

func (r *PhysicalTestRepository) Create(ctx context.Context, t physicaltest.PhysicalTest) error {
	query, args, err := qb.InsertInto("physical_tests").
		Columns(physicalTestColumns...).
		Values(
			t.ID, t.TenantID, t.PlayerID, t.TestedOn, t.Evaluator, t.HeightCM,
			t.WeightKG, t.Sprint30mS, t.AgilityS, t.EnduranceLevel,
			t.StrengthScore, t.TechnicalScore, t.Observations,
			t.CreatedAt, t.UpdatedAt,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert physical test query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert physical test: %w", err)
	}

	return nil
}

func (r *PhysicalTestRepository) GetByID(ctx context.Context, tenantID, id string) (physicaltest.PhysicalTest, bool, error) {
	query, args, err := physicalTestBaseSelectBuilder().
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return physicaltest.PhysicalTest{}, false, fmt.Errorf("build get physical test query: %w", err)
	}

	var row physicalTestTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return physicaltest.PhysicalTest{}, false, nil
		}
		return physicaltest.PhysicalTest{}, false, fmt.Errorf("get physical test: %w", err)
	}

	return physicalTestFromRow(row), true, nil
}

func (r *PhysicalTestRepository) ListByPlayer(ctx context.Context, tenantID, playerID string) ([]physicaltest.PhysicalTest, error) {
	query, args, err := physicalTestBaseSelectBuilder().
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("player_id", playerID),
		).
		OrderBy("tested_on DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list physical tests query: %w", err)
	}

	var rows []physicalTestTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list physical tests: %w", err)
	}

	out := make([]physicaltest.PhysicalTest, 0, len(rows))
	for _, row := range rows {
		out = append(out, physicalTestFromRow(row))
	}
	return out, nil
}

func (r *PhysicalTestRepository) Update(ctx context.Context, t physicaltest.PhysicalTest) (bool, error) {
	query, args, err := qb.Update("physical_tests").
		Set("tested_on", t.TestedOn).
		Set("evaluator", t.Evaluator).
		Set("height_cm", t.HeightCM).
		Set("weight_kg", t.WeightKG).
		Set("sprint_30m_s", t.Sprint30mS).
		Set("agility_s", t.AgilityS).
		Set("endurance_level", t.EnduranceLevel).
		Set("strength_score", t.StrengthScore).
		Set("technical_score", t.TechnicalScore).
		Set("observations", t.Observations).
		SetRaw("updated_at", "NOW()").
		Where(
			qb.Eq("tenant_id", t.TenantID),
			qb.Eq("id", t.ID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update physical test query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update physical test: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update physical test rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *PhysicalTestRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("physical_tests").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete physical test query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete physical test: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete physical test rows affected: %w", err)
	}

	return affected > 0, nil
}
