package usecase

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"github.com/kasparro/content-engine/internal/domain"
)

// requiredRecordFields are the raw keys that must be present before a record
// can be constructed
var requiredRecordFields = []string{
	"product_name",
	"skin_type",
	"key_ingredients",
	"benefits",
	"how_to_use",
	"side_effects",
	"price",
}

// recordValidator enforces the struct-level schema rules (validate tags)
var recordValidator = validator.New()

// ParserService converts raw untyped records into validated product records.
// Normalization is applied before schema validation: comma-separated list
// fields are split, the numeric price is derived, and defaults are filled.
type ParserService struct {
	enableDebugLogging bool
}

// NewParserService creates a new parser service
func NewParserService(enableDebugLogging bool) *ParserService {
	return &ParserService{
		enableDebugLogging: enableDebugLogging,
	}
}

// Parse normalizes and validates one raw record. The competitor flag only
// marks the record's role; both roles share the same schema. Fails with
// ErrSchemaValidation when a required field is absent or of the wrong shape.
func (s *ParserService) Parse(raw map[string]any, isCompetitor bool) (*domain.ProductRecord, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: no record supplied", domain.ErrSchemaValidation)
	}

	for _, field := range requiredRecordFields {
		if _, ok := raw[field]; !ok {
			return nil, fmt.Errorf("%w: missing required field %q", domain.ErrSchemaValidation, field)
		}
	}

	// Work on a copy so the caller's raw map stays untouched
	normalized := make(map[string]any, len(raw)+2)
	for key, value := range raw {
		normalized[key] = value
	}

	// Convert comma-separated strings to lists; values already given as
	// lists are left unchanged
	for _, field := range []string{"skin_type", "key_ingredients", "benefits"} {
		if text, ok := normalized[field].(string); ok {
			normalized[field] = ParseCommaSeparated(text)
		}
	}

	// Derive the numeric price from the display string
	priceStr := "0"
	if text, ok := normalized["price"].(string); ok {
		priceStr = text
	}
	normalized["price_value"] = ExtractPrice(priceStr)

	// Default applies only when the key is absent; an explicit empty string
	// is kept as supplied
	if _, ok := normalized["currency"]; !ok {
		normalized["currency"] = "INR"
	}

	record, err := decodeRecord(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaValidation, err)
	}

	if err := recordValidator.Struct(record); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaValidation, err)
	}

	if s.enableDebugLogging {
		role := "product"
		if isCompetitor {
			role = "competitor"
		}
		log.Printf("[PARSE] %s %q parsed (price_value=%.2f, %d ingredients, %d benefits)",
			role, record.ProductName, record.PriceValue, len(record.KeyIngredients), len(record.Benefits))
	}

	return record, nil
}

// decodeRecord decodes the normalized map into a ProductRecord. The decode
// is strict - mismatched field shapes (e.g. a numeric price) are errors,
// not coercions.
func decodeRecord(data map[string]any) (*domain.ProductRecord, error) {
	var record domain.ProductRecord

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &record,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(data); err != nil {
		return nil, err
	}

	return &record, nil
}
