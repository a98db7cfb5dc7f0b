// Package render turns a populated content context into page-shaped output
// envelopes, one template per page type.
package render

import (
	"fmt"

	"github.com/kasparro/content-engine/internal/domain"
)

// Template renders a content context into one page-output envelope
type Template interface {
	Render(context *domain.ContentContext) (*domain.PageOutput, error)
}

// Writer dispatches rendering over the fixed set of page types
type Writer struct {
	faq        Template
	product    Template
	comparison Template
}

// NewWriter creates a writer with the three page templates
func NewWriter() *Writer {
	return &Writer{
		faq:        FAQTemplate{},
		product:    ProductPageTemplate{},
		comparison: ComparisonPageTemplate{},
	}
}

// Page renders the requested page type and returns the typed envelope.
// Fails with ErrUnknownPageType for any key outside the fixed set.
func (w *Writer) Page(pageType domain.PageType, context *domain.ContentContext) (*domain.PageOutput, error) {
	template, err := w.template(pageType)
	if err != nil {
		return nil, err
	}
	return template.Render(context)
}

// WritePage renders the requested page type and returns the envelope
// flattened field-for-field into a generic mapping
func (w *Writer) WritePage(pageType domain.PageType, context *domain.ContentContext) (map[string]any, error) {
	page, err := w.Page(pageType, context)
	if err != nil {
		return nil, err
	}
	return page.AsMap()
}

func (w *Writer) template(pageType domain.PageType) (Template, error) {
	switch pageType {
	case domain.PageTypeFAQ:
		return w.faq, nil
	case domain.PageTypeProduct:
		return w.product, nil
	case domain.PageTypeComparison:
		return w.comparison, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPageType, pageType)
	}
}
