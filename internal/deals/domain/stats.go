package domain

import "github.com/shopspring/decimal"

// Stats summarises an owner's deals. Values are summed exactly.
type Stats struct {
	TotalDeals   int64            `json:"totalDeals"`
	DealsByStage map[string]int64 `json:"dealsByStage"`
	TotalValue   decimal.Decimal  `json:"totalValue"`
	WonValue     decimal.Decimal  `json:"wonValue"`
}

func NewStats() Stats {
	byStage := make(map[string]int64, len(Stages))
	for _, stage := range Stages {
		byStage[stage.String()] = 0
	}
	return Stats{DealsByStage: byStage, TotalValue: decimal.Zero, WonValue: decimal.Zero}
}

// Add counts one deal. A deal without a value counts as zero.
func (s *Stats) Add(stage Stage, value decimal.NullDecimal) {
	s.TotalDeals++
	s.DealsByStage[stage.String()]++
	if !value.Valid {
		return
	}
	s.TotalValue = s.TotalValue.Add(value.Decimal)
	if stage == StageClosedWon {
		s.WonValue = s.WonValue.Add(value.Decimal)
	}
}
