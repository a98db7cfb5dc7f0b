package usecase

import (
	"log"

	"github.com/kasparro/content-engine/internal/domain"
)

// StrategistService consumes validated records and decides what goes on the
// pages: it populates a ContentContext with generated FAQs and, when a
// competitor is present, the comparison table.
type StrategistService struct {
	enableDebugLogging bool
}

// NewStrategistService creates a new strategist service
func NewStrategistService(enableDebugLogging bool) *StrategistService {
	return &StrategistService{
		enableDebugLogging: enableDebugLogging,
	}
}

// GenerateContext builds the content context for one pipeline run. FAQ
// generation always runs against the primary record. Comparison rows are
// produced only when a competitor record is supplied, in fixed order:
// ingredients, price, concentration.
func (s *StrategistService) GenerateContext(
	product *domain.ProductRecord,
	competitor *domain.CompetitorRecord,
) (*domain.ContentContext, error) {
	if product == nil {
		return nil, domain.ErrInvalidRequest
	}

	context := &domain.ContentContext{
		Product:    product,
		Competitor: competitor,
	}

	context.GeneratedFAQs = GenerateFAQs(product)

	if competitor != nil {
		context.ComparisonTable = append(context.ComparisonTable, CompareIngredients(product, competitor))
		context.ComparisonTable = append(context.ComparisonTable, ComparePrice(product, competitor))

		// The delta label is intentionally not attached to the row; the
		// emitted concentration row carries only the raw field values
		concDelta := classifyConcentration(product, competitor)
		if s.enableDebugLogging {
			log.Printf("[STRATEGY] concentration delta vs %q classified as %q (log-only)",
				competitor.ProductName, concDelta)
		}
		context.ComparisonTable = append(context.ComparisonTable, domain.ComparisonRow{
			Feature:           "Concentration",
			OurProduct:        product.Concentration,
			CompetitorProduct: competitor.Concentration,
		})
	}

	if s.enableDebugLogging {
		log.Printf("[STRATEGY] context ready: %d FAQs, %d comparison rows",
			len(context.GeneratedFAQs), len(context.ComparisonTable))
	}

	return context, nil
}
