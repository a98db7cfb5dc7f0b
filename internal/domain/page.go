package domain

import "encoding/json"

// PageType enumerates the supported output page types
type PageType string

const (
	PageTypeFAQ        PageType = "faq"
	PageTypeProduct    PageType = "product"
	PageTypeComparison PageType = "comparison"
)

// PageOutput is the generic rendering envelope for one output page.
// Content holds per-page typed content; its JSON field order is the
// serialized key order.
type PageOutput struct {
	PageType     string            `json:"page_type"`
	Title        string            `json:"title"`
	Content      any               `json:"content"`
	MetaMetadata map[string]string `json:"meta_metadata"`
}

// AsMap flattens the envelope field-for-field into a generic mapping.
// Serializes to JSON and back to ensure a consistent nested structure.
func (p *PageOutput) AsMap() (map[string]any, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}

	return out, nil
}
