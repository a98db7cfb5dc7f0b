package domain

// ProductRecord represents one product's descriptive facts after normalization
type ProductRecord struct {
	ProductName    string   `json:"product_name" mapstructure:"product_name" validate:"required"`
	Concentration  string   `json:"concentration,omitempty" mapstructure:"concentration"`
	SkinType       []string `json:"skin_type" mapstructure:"skin_type"`
	KeyIngredients []string `json:"key_ingredients" mapstructure:"key_ingredients"`
	Benefits       []string `json:"benefits" mapstructure:"benefits"`
	HowToUse       string   `json:"how_to_use" mapstructure:"how_to_use"`
	SideEffects    string   `json:"side_effects" mapstructure:"side_effects"`
	Price          string   `json:"price" mapstructure:"price"` // display string, e.g. "₹699"
	Currency       string   `json:"currency" mapstructure:"currency"`
	PriceValue     float64  `json:"price_value" mapstructure:"price_value"` // derived from Price by the parser
}

// CompetitorRecord is structurally identical to ProductRecord; it is
// distinguished only by role (comparison target, never the primary subject).
type CompetitorRecord = ProductRecord

// FAQ categories used by the generation rules. Informal labels, not a
// closed set - FAQEntry.Category accepts any text.
const (
	CategoryUsage       = "Usage"
	CategorySafety      = "Safety"
	CategoryIngredients = "Ingredients"
	CategoryGeneral     = "General"
	CategoryBenefits    = "Benefits"
	CategoryPurchase    = "Purchase"
	CategorySuitability = "Suitability"
	CategoryEthics      = "Ethics"
)

// FAQEntry is one generated question/answer pair. Ordering within a
// containing slice reflects generation order and is preserved into output.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// ComparisonRow is one feature row of the competitor comparison table
type ComparisonRow struct {
	Feature           string `json:"feature"`
	OurProduct        string `json:"our_product"`
	CompetitorProduct string `json:"competitor_product"`
}

// ContentContext is the aggregate passed from the strategist to the writer.
// The strategist populates it once; downstream consumers treat it as
// read-only. Scoped to a single pipeline run, never persisted.
type ContentContext struct {
	Product         *ProductRecord    `json:"product"`
	Competitor      *CompetitorRecord `json:"competitor,omitempty"`
	GeneratedFAQs   []FAQEntry        `json:"generated_faqs"`
	ComparisonTable []ComparisonRow   `json:"comparison_table"`
}
