package usecase

import (
	"fmt"
	"strings"

	"github.com/kasparro/content-engine/internal/domain"
)

// minFAQCount is the threshold below which the filler entries are appended.
// A single top-up pass, not a loop - the final count may still be below it.
const minFAQCount = 15

// GenerateFAQs produces the FAQ list for a product from a fixed,
// deterministic rule sequence. The rule order is significant and preserved
// into output. All textual interpolation uses the literal field values.
func GenerateFAQs(product *domain.ProductRecord) []domain.FAQEntry {
	var faqs []domain.FAQEntry

	// Usage: only when usage instructions are present
	if product.HowToUse != "" {
		faqs = append(faqs, domain.FAQEntry{
			Question: fmt.Sprintf("How should I use %s?", product.ProductName),
			Answer:   product.HowToUse,
			Category: domain.CategoryUsage,
		})
	}

	// Safety: only when the side effects mention sensitive skin
	if strings.Contains(strings.ToLower(product.SideEffects), "sensitive skin") {
		faqs = append(faqs, domain.FAQEntry{
			Question: "Is this safe for sensitive skin?",
			Answer:   fmt.Sprintf("Note: %s", product.SideEffects),
			Category: domain.CategorySafety,
		})
	}

	// Ingredients: only on an exact "Vitamin C" element match
	if containsExact(product.KeyIngredients, "Vitamin C") {
		faqs = append(faqs, domain.FAQEntry{
			Question: "What is the concentration of Vitamin C?",
			Answer:   fmt.Sprintf("It contains %s.", product.Concentration),
			Category: domain.CategoryIngredients,
		})
	}

	faqs = append(faqs, domain.FAQEntry{
		Question: "What type of product is this?",
		Answer:   fmt.Sprintf("This is a %s serum.", product.Concentration),
		Category: domain.CategoryGeneral,
	})

	// Fixed usage boilerplate, not derived from the record
	faqs = append(faqs,
		domain.FAQEntry{
			Question: "When is the best time to apply?",
			Answer:   "Morning is recommended suitable for its brightening effects.",
			Category: domain.CategoryUsage,
		},
		domain.FAQEntry{
			Question: "Can I use it with sunscreen?",
			Answer:   "Yes, it should be applied before sunscreen.",
			Category: domain.CategoryUsage,
		},
		domain.FAQEntry{
			Question: "How many drops do I need?",
			Answer:   "2-3 drops are sufficient for the full face.",
			Category: domain.CategoryUsage,
		},
	)

	for _, benefit := range product.Benefits {
		faqs = append(faqs, domain.FAQEntry{
			Question: fmt.Sprintf("Does this help with %s?", strings.ToLower(benefit)),
			Answer:   fmt.Sprintf("Yes, one of the key benefits is %s.", strings.ToLower(benefit)),
			Category: domain.CategoryBenefits,
		})
	}

	// The role answer always cites the first benefit, never a
	// per-ingredient-relevant one. Known simplification, kept as-is.
	role := "skin health"
	if len(product.Benefits) > 0 {
		role = product.Benefits[0]
	}
	for _, ingredient := range product.KeyIngredients {
		faqs = append(faqs,
			domain.FAQEntry{
				Question: fmt.Sprintf("Does it contain %s?", ingredient),
				Answer:   fmt.Sprintf("Yes, %s is a key ingredient.", ingredient),
				Category: domain.CategoryIngredients,
			},
			domain.FAQEntry{
				Question: fmt.Sprintf("What is the role of %s?", ingredient),
				Answer:   fmt.Sprintf("%s helps in %s.", ingredient, role),
				Category: domain.CategoryIngredients,
			},
		)
	}

	faqs = append(faqs,
		domain.FAQEntry{
			Question: "Is it suitable for daily use?",
			Answer:   "Yes, it can be used daily.",
			Category: domain.CategorySafety,
		},
		domain.FAQEntry{
			Question: "Will it irritate my skin?",
			Answer:   fmt.Sprintf("Side effects are minimal: %s", product.SideEffects),
			Category: domain.CategorySafety,
		},
	)

	faqs = append(faqs,
		domain.FAQEntry{
			Question: "How much does it cost?",
			Answer:   fmt.Sprintf("The price is %s.", product.Price),
			Category: domain.CategoryPurchase,
		},
		domain.FAQEntry{
			Question: "Is this a good value?",
			Answer:   fmt.Sprintf("At %s for %s, it offers competitive value.", product.Price, product.Concentration),
			Category: domain.CategoryPurchase,
		},
	)

	for _, skinType := range product.SkinType {
		faqs = append(faqs, domain.FAQEntry{
			Question: fmt.Sprintf("Is it good for %s skin?", skinType),
			Answer:   "Yes, it is specifically formulated for it.",
			Category: domain.CategorySuitability,
		})
	}

	if len(faqs) < minFAQCount {
		faqs = append(faqs,
			domain.FAQEntry{
				Question: "Is this product cruelty-free?",
				Answer:   "Please check the packaging for certification.",
				Category: domain.CategoryEthics,
			},
			domain.FAQEntry{
				Question: "What is the shelf life?",
				Answer:   "Typically 12 months after opening.",
				Category: domain.CategoryGeneral,
			},
			domain.FAQEntry{
				Question: "Can men use this?",
				Answer:   "Yes, it is suitable for all genders.",
				Category: domain.CategorySuitability,
			},
		)
	}

	return faqs
}

// containsExact reports whether items contains target as an exact,
// case-sensitive element match
func containsExact(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
