package physicaltest

import (
	"fmt"
	"time"
)

// PhysicalTest is a dated measurement snapshot for one player. Pure
// record-keeping; no invariants beyond tenant and player scoping.
type PhysicalTest struct {
	ID             string
	TenantID       string
	PlayerID       string
	TestedOn       time.Time
	Evaluator      string
	HeightCM       float64
	WeightKG       float64
	Sprint30mS     float64
	AgilityS       float64
	EnduranceLevel int
	StrengthScore  float64
	TechnicalScore float64
	Observations   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p PhysicalTest) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("physical test id is required")
	}
	if p.TenantID == "" {
		return fmt.Errorf("physical test tenant id is required")
	}
	if p.PlayerID == "" {
		return fmt.Errorf("physical test player id is required")
	}
	if p.TestedOn.IsZero() {
		return fmt.Errorf("physical test date is required")
	}
	if p.TechnicalScore < 0 || p.TechnicalScore > 10 {
		return fmt.Errorf("technical score must be between 0 and 10")
	}
	if p.StrengthScore < 0 || p.StrengthScore > 10 {
		return fmt.Errorf("strength score must be between 0 and 10")
	}

	return nil
}
