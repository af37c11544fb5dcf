package engine

import (
	"github.com/pergosolar/opticost-go/internal/domain/entity"
)

// aggregate sums the five cost lines and applies cost-plus margin. The
// reported margin amount always equals suggested price minus total cost.
func (c *calc) aggregate() entity.Quote {
	q := &c.quote

	q.TotalCost = q.CostLabor + q.CostStay + q.CostTravel + q.CostEquipment + q.CostFreight
	q.MarginAmount = q.TotalCost * c.rates.MarginPct / 100
	q.SuggestedPrice = q.TotalCost + q.MarginAmount

	return c.quote
}
