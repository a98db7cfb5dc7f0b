package usecase

import (
	"context"
	"log"

	"github.com/kasparro/content-engine/internal/domain"
	"github.com/kasparro/content-engine/internal/render"
)

// PipelineResult holds the three rendered pages of one run, in the fixed
// faq -> product -> comparison order
type PipelineResult struct {
	FAQ            *domain.PageOutput
	ProductPage    *domain.PageOutput
	ComparisonPage *domain.PageOutput
}

// PipelineConfig holds configuration for the pipeline service
type PipelineConfig struct {
	EnableDebugLogging bool
}

// PipelineService sequences parser -> strategist -> writer for one run.
// Any stage failure aborts the entire run; no partial output is produced.
type PipelineService struct {
	parser             *ParserService
	strategist         *StrategistService
	writer             *render.Writer
	enableDebugLogging bool
}

// NewPipelineService creates a pipeline service with its stage dependencies
func NewPipelineService(config PipelineConfig) *PipelineService {
	return &PipelineService{
		parser:             NewParserService(config.EnableDebugLogging),
		strategist:         NewStrategistService(config.EnableDebugLogging),
		writer:             render.NewWriter(),
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Run executes the full pipeline: parse the product record, parse the
// competitor record when supplied, generate the content context, and render
// the three pages in fixed order.
func (s *PipelineService) Run(
	ctx context.Context,
	rawProduct map[string]any,
	rawCompetitor map[string]any,
) (*PipelineResult, error) {
	generated, err := s.generateContext(ctx, rawProduct, rawCompetitor)
	if err != nil {
		return nil, err
	}

	result := &PipelineResult{}
	pages := []struct {
		pageType domain.PageType
		target   **domain.PageOutput
	}{
		{domain.PageTypeFAQ, &result.FAQ},
		{domain.PageTypeProduct, &result.ProductPage},
		{domain.PageTypeComparison, &result.ComparisonPage},
	}

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		output, err := s.writer.Page(page.pageType, generated)
		if err != nil {
			return nil, err
		}
		*page.target = output

		if s.enableDebugLogging {
			log.Printf("[PIPELINE] rendered %q page", page.pageType)
		}
	}

	return result, nil
}

// RunPage executes the pipeline for a single page type. Used by the HTTP
// delivery layer; the file pipeline always produces all three pages.
func (s *PipelineService) RunPage(
	ctx context.Context,
	pageType domain.PageType,
	rawProduct map[string]any,
	rawCompetitor map[string]any,
) (*domain.PageOutput, error) {
	generated, err := s.generateContext(ctx, rawProduct, rawCompetitor)
	if err != nil {
		return nil, err
	}

	return s.writer.Page(pageType, generated)
}

// generateContext runs the parse and strategize stages shared by Run and
// RunPage. A nil rawCompetitor skips competitor parsing entirely.
func (s *PipelineService) generateContext(
	ctx context.Context,
	rawProduct map[string]any,
	rawCompetitor map[string]any,
) (*domain.ContentContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	product, err := s.parser.Parse(rawProduct, false)
	if err != nil {
		return nil, err
	}

	var competitor *domain.CompetitorRecord
	if rawCompetitor != nil {
		competitor, err = s.parser.Parse(rawCompetitor, true)
		if err != nil {
			return nil, err
		}
	}

	return s.strategist.GenerateContext(product, competitor)
}
