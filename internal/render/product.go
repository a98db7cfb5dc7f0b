package render

import (
	"fmt"
	"strings"

	"github.com/kasparro/content-engine/internal/domain"
)

// productDetails is the details sub-block of the product page
type productDetails struct {
	Ingredients       []string `json:"ingredients"`
	Benefits          []string `json:"benefits"`
	UsageInstructions string   `json:"usage_instructions"`
}

// productPageContent is the content block of the product page
type productPageContent struct {
	Name       string         `json:"name"`
	Price      string         `json:"price"`
	Summary    string         `json:"summary"`
	Details    productDetails `json:"details"`
	SafetyInfo string         `json:"safety_info"`
}

// ProductPageTemplate renders the product description page
type ProductPageTemplate struct{}

// Render produces the product page envelope
func (ProductPageTemplate) Render(context *domain.ContentContext) (*domain.PageOutput, error) {
	p := context.Product

	keywords := make([]string, 0, len(p.KeyIngredients)+len(p.Benefits))
	keywords = append(keywords, p.KeyIngredients...)
	keywords = append(keywords, p.Benefits...)

	return &domain.PageOutput{
		PageType: "Product Page",
		Title:    p.ProductName,
		Content: productPageContent{
			Name:  p.ProductName,
			Price: p.Price,
			Summary: fmt.Sprintf("%s is a %s serum designed for %s skin.",
				p.ProductName, p.Concentration, strings.Join(p.SkinType, ", ")),
			Details: productDetails{
				Ingredients:       p.KeyIngredients,
				Benefits:          p.Benefits,
				UsageInstructions: p.HowToUse,
			},
			SafetyInfo: p.SideEffects,
		},
		MetaMetadata: map[string]string{
			"keywords": strings.Join(keywords, ", "),
		},
	}, nil
}
