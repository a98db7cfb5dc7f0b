package render

import (
	"fmt"

	"github.com/kasparro/content-engine/internal/domain"
)

// comparisonRowView is the re-keyed row shape exposed on the comparison page
type comparisonRowView struct {
	Feature string `json:"feature"`
	Us      string `json:"us"`
	Them    string `json:"them"`
}

// comparisonPageContent is the content block of the comparison page
type comparisonPageContent struct {
	PrimaryProduct    string              `json:"primary_product"`
	CompetitorProduct string              `json:"competitor_product"`
	ComparisonTable   []comparisonRowView `json:"comparison_table"`
	Verdict           string              `json:"verdict"`
}

// ComparisonPageTemplate renders the competitor comparison page
type ComparisonPageTemplate struct{}

// Render produces the comparison page envelope. Fails with
// ErrMissingCompetitor when the context holds no competitor record.
// The verdict is a fixed templated claim, not a computed comparison.
func (ComparisonPageTemplate) Render(context *domain.ContentContext) (*domain.PageOutput, error) {
	if context.Competitor == nil {
		return nil, domain.ErrMissingCompetitor
	}

	rows := make([]comparisonRowView, 0, len(context.ComparisonTable))
	for _, row := range context.ComparisonTable {
		rows = append(rows, comparisonRowView{
			Feature: row.Feature,
			Us:      row.OurProduct,
			Them:    row.CompetitorProduct,
		})
	}

	return &domain.PageOutput{
		PageType: "Comparison Page",
		Title:    fmt.Sprintf("%s vs %s", context.Product.ProductName, context.Competitor.ProductName),
		Content: comparisonPageContent{
			PrimaryProduct:    context.Product.ProductName,
			CompetitorProduct: context.Competitor.ProductName,
			ComparisonTable:   rows,
			Verdict: fmt.Sprintf("%s offers a higher concentration (%s) compared to %s.",
				context.Product.ProductName, context.Product.Concentration, context.Competitor.ProductName),
		},
		MetaMetadata: map[string]string{},
	}, nil
}
