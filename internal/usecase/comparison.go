package usecase

import (
	"strings"

	"github.com/kasparro/content-engine/internal/domain"
)

// CompareIngredients creates the ingredient comparison row. Both ingredient
// lists are joined with ", " in their original order.
func CompareIngredients(p1 *domain.ProductRecord, p2 *domain.CompetitorRecord) domain.ComparisonRow {
	return domain.ComparisonRow{
		Feature:           "Key Ingredients",
		OurProduct:        strings.Join(p1.KeyIngredients, ", "),
		CompetitorProduct: strings.Join(p2.KeyIngredients, ", "),
	}
}

// ComparePrice creates the price comparison row. Values are the raw display
// price text, not the derived numeric value.
func ComparePrice(p1 *domain.ProductRecord, p2 *domain.CompetitorRecord) domain.ComparisonRow {
	return domain.ComparisonRow{
		Feature:           "Price",
		OurProduct:        p1.Price,
		CompetitorProduct: p2.Price,
	}
}

// classifyConcentration labels the concentration delta between the two
// records. The label never reaches the emitted row - the strategist only
// surfaces it on the debug log.
func classifyConcentration(p *domain.ProductRecord, c *domain.CompetitorRecord) string {
	if strings.Contains(p.Concentration, "10%") && strings.Contains(c.Concentration, "5%") {
		return "Higher"
	}
	return "Different"
}
