package usecase

import (
	"strings"
	"testing"

	"github.com/kasparro/content-engine/internal/domain"
)

func glowBoostRecord() *domain.ProductRecord {
	return &domain.ProductRecord{
		ProductName:    "GlowBoost Serum",
		Concentration:  "10% Vitamin C",
		SkinType:       []string{"Oily", "Combination"},
		KeyIngredients: []string{"Vitamin C", "Hyaluronic Acid"},
		Benefits:       []string{"Brightening", "Hydration"},
		HowToUse:       "Apply 2 drops",
		SideEffects:    "None known",
		Price:          "₹699",
		Currency:       "INR",
		PriceValue:     699.0,
	}
}

func countQuestions(faqs []domain.FAQEntry, substr string) int {
	count := 0
	for _, faq := range faqs {
		if strings.Contains(faq.Question, substr) {
			count++
		}
	}
	return count
}

func TestGenerateFAQs_UsageRuleIsConditional(t *testing.T) {
	t.Run("emits usage entry when instructions present", func(t *testing.T) {
		faqs := GenerateFAQs(glowBoostRecord())

		if got := countQuestions(faqs, "How should I use"); got != 1 {
			t.Errorf("usage entries = %d, want 1", got)
		}
		if faqs[0].Question != "How should I use GlowBoost Serum?" {
			t.Errorf("first question = %q, want usage question", faqs[0].Question)
		}
		if faqs[0].Answer != "Apply 2 drops" {
			t.Errorf("usage answer = %q, want literal how_to_use text", faqs[0].Answer)
		}
	})

	t.Run("omits usage entry when instructions empty", func(t *testing.T) {
		product := glowBoostRecord()
		product.HowToUse = ""

		faqs := GenerateFAQs(product)

		if got := countQuestions(faqs, "How should I use"); got != 0 {
			t.Errorf("usage entries = %d, want 0", got)
		}
	})
}

func TestGenerateFAQs_SensitiveSkinRule(t *testing.T) {
	t.Run("matches substring case-insensitively", func(t *testing.T) {
		product := glowBoostRecord()
		product.SideEffects = "Mild tingling on Sensitive Skin"

		faqs := GenerateFAQs(product)

		if got := countQuestions(faqs, "safe for sensitive skin"); got != 1 {
			t.Errorf("sensitive-skin entries = %d, want 1", got)
		}
	})

	t.Run("absent without the trigger substring", func(t *testing.T) {
		faqs := GenerateFAQs(glowBoostRecord())

		if got := countQuestions(faqs, "safe for sensitive skin"); got != 0 {
			t.Errorf("sensitive-skin entries = %d, want 0", got)
		}
	})
}

func TestGenerateFAQs_VitaminCRule(t *testing.T) {
	t.Run("present exactly once on exact element match", func(t *testing.T) {
		faqs := GenerateFAQs(glowBoostRecord())

		if got := countQuestions(faqs, "concentration of Vitamin C"); got != 1 {
			t.Errorf("concentration entries = %d, want 1", got)
		}
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		product := glowBoostRecord()
		product.KeyIngredients = []string{"vitamin c", "Hyaluronic Acid"}

		faqs := GenerateFAQs(product)

		if got := countQuestions(faqs, "concentration of Vitamin C"); got != 0 {
			t.Errorf("concentration entries = %d, want 0", got)
		}
	})

	t.Run("match is whole-element, not substring", func(t *testing.T) {
		product := glowBoostRecord()
		product.KeyIngredients = []string{"Vitamin C Ester"}

		faqs := GenerateFAQs(product)

		if got := countQuestions(faqs, "concentration of Vitamin C"); got != 0 {
			t.Errorf("concentration entries = %d, want 0", got)
		}
	})
}

func TestGenerateFAQs_CountFormula(t *testing.T) {
	// One benefit, one ingredient, one skin type, all optional triggers true:
	// 1 usage + 1 safety + 1 vitamin C + 1 general + 3 fixed usage +
	// 1 benefit + 2 ingredient + 2 fixed safety + 2 fixed purchase +
	// 1 skin type = 15, so no filler is appended.
	product := &domain.ProductRecord{
		ProductName:    "GlowBoost Serum",
		Concentration:  "10% Vitamin C",
		SkinType:       []string{"Oily"},
		KeyIngredients: []string{"Vitamin C"},
		Benefits:       []string{"Brightening"},
		HowToUse:       "Apply 2 drops",
		SideEffects:    "Tingles on sensitive skin",
		Price:          "₹699",
	}

	faqs := GenerateFAQs(product)

	if len(faqs) != 15 {
		t.Errorf("FAQ count = %d, want 15", len(faqs))
	}
	if got := countQuestions(faqs, "cruelty-free"); got != 0 {
		t.Errorf("filler entries present at count 15, want none")
	}
}

func TestGenerateFAQs_FullRecordCount(t *testing.T) {
	// GlowBoost: 1 usage + 1 vitamin C + 1 general + 3 fixed usage +
	// 2 benefits + 4 ingredient pairs + 2 fixed safety + 2 fixed purchase +
	// 2 skin types = 18
	faqs := GenerateFAQs(glowBoostRecord())

	if len(faqs) != 18 {
		t.Fatalf("FAQ count = %d, want 18", len(faqs))
	}

	wantCategories := []string{
		domain.CategoryUsage,       // how should I use
		domain.CategoryIngredients, // vitamin C concentration
		domain.CategoryGeneral,
		domain.CategoryUsage, domain.CategoryUsage, domain.CategoryUsage,
		domain.CategoryBenefits, domain.CategoryBenefits,
		domain.CategoryIngredients, domain.CategoryIngredients,
		domain.CategoryIngredients, domain.CategoryIngredients,
		domain.CategorySafety, domain.CategorySafety,
		domain.CategoryPurchase, domain.CategoryPurchase,
		domain.CategorySuitability, domain.CategorySuitability,
	}
	for i, want := range wantCategories {
		if faqs[i].Category != want {
			t.Errorf("faqs[%d].Category = %q, want %q", i, faqs[i].Category, want)
		}
	}
}

func TestGenerateFAQs_BenefitEntriesLowercased(t *testing.T) {
	faqs := GenerateFAQs(glowBoostRecord())

	if got := countQuestions(faqs, "Does this help with brightening?"); got != 1 {
		t.Errorf("lowercased benefit question missing")
	}
	if got := countQuestions(faqs, "Does this help with Brightening?"); got != 0 {
		t.Errorf("benefit question not lowercased")
	}
}

func TestGenerateFAQs_RoleAnswerCitesFirstBenefit(t *testing.T) {
	t.Run("always the first benefit, for every ingredient", func(t *testing.T) {
		faqs := GenerateFAQs(glowBoostRecord())

		for _, faq := range faqs {
			if strings.HasPrefix(faq.Question, "What is the role of") {
				if !strings.Contains(faq.Answer, "helps in Brightening.") {
					t.Errorf("role answer = %q, want first benefit cited", faq.Answer)
				}
			}
		}
	})

	t.Run("falls back to skin health without benefits", func(t *testing.T) {
		product := glowBoostRecord()
		product.Benefits = nil

		faqs := GenerateFAQs(product)

		found := false
		for _, faq := range faqs {
			if faq.Question == "What is the role of Vitamin C?" {
				found = true
				if faq.Answer != "Vitamin C helps in skin health." {
					t.Errorf("role answer = %q, want skin health fallback", faq.Answer)
				}
			}
		}
		if !found {
			t.Error("missing role entry for Vitamin C")
		}
	})
}

func TestGenerateFAQs_FillerTopUp(t *testing.T) {
	// Minimal record: 1 general + 3 fixed usage + 2 fixed safety +
	// 2 fixed purchase = 8, below 15, so the three fillers are appended once.
	product := &domain.ProductRecord{
		ProductName: "Bare Serum",
		Price:       "₹99",
	}

	faqs := GenerateFAQs(product)

	if len(faqs) != 11 {
		t.Fatalf("FAQ count = %d, want 11", len(faqs))
	}

	tail := faqs[len(faqs)-3:]
	if tail[0].Question != "Is this product cruelty-free?" || tail[0].Category != domain.CategoryEthics {
		t.Errorf("filler[0] = %+v, want cruelty-free ethics entry", tail[0])
	}
	if tail[1].Question != "What is the shelf life?" || tail[1].Category != domain.CategoryGeneral {
		t.Errorf("filler[1] = %+v, want shelf-life general entry", tail[1])
	}
	if tail[2].Question != "Can men use this?" || tail[2].Category != domain.CategorySuitability {
		t.Errorf("filler[2] = %+v, want suitability entry", tail[2])
	}
}
