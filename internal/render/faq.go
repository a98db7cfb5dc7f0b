package render

import (
	"fmt"

	"github.com/kasparro/content-engine/internal/domain"
)

// faqItemView is the per-entry shape exposed on the FAQ page
type faqItemView struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
	Category string `json:"category"`
}

// faqPageContent is the content block of the FAQ page
type faqPageContent struct {
	FAQs       []faqItemView `json:"faqs"`
	TotalCount int           `json:"total_count"`
}

// FAQTemplate renders the FAQ page
type FAQTemplate struct{}

// Render produces the FAQ page envelope. Entry order follows generation
// order and the total count equals the list length.
func (FAQTemplate) Render(context *domain.ContentContext) (*domain.PageOutput, error) {
	faqList := make([]faqItemView, 0, len(context.GeneratedFAQs))
	for _, item := range context.GeneratedFAQs {
		faqList = append(faqList, faqItemView{
			Question: item.Question,
			Answer:   item.Answer,
			Category: item.Category,
		})
	}

	return &domain.PageOutput{
		PageType: "FAQ Page",
		Title:    fmt.Sprintf("Frequently Asked Questions - %s", context.Product.ProductName),
		Content: faqPageContent{
			FAQs:       faqList,
			TotalCount: len(faqList),
		},
		MetaMetadata: map[string]string{
			"description": fmt.Sprintf("Common questions about %s including usage and benefits.", context.Product.ProductName),
		},
	}, nil
}
