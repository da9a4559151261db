package negotiation

import "math"

// QualityGrade classifies a produce lot the way wholesale brokers grade it.
type QualityGrade string

const (
	GradeA      QualityGrade = "A"
	GradeB      QualityGrade = "B"
	GradeExport QualityGrade = "Export"
)

// Product describes the lot being negotiated. Created once per scenario and
// never mutated; BaseMarketPrice is the reference value every percentage
// threshold is computed against.
type Product struct {
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Quantity        int            `json:"quantity"`
	Grade           QualityGrade   `json:"quality_grade"`
	Origin          string         `json:"origin"`
	BaseMarketPrice int            `json:"base_market_price"`
	Attributes      map[string]any `json:"attributes,omitempty"`
}

// FairPrice adjusts the market reference by quality grade and lot size.
// Grade B trades below reference, export grade above; lots over a hundred
// units get a bulk discount.
func (p Product) FairPrice() int {
	mult := 1.0
	switch p.Grade {
	case GradeB:
		mult = 0.85
	case GradeExport:
		mult = 1.15
	}
	if p.Quantity > 100 {
		mult *= 0.95
	}
	return int(math.Round(float64(p.BaseMarketPrice) * mult))
}
