// Command generator runs the content pipeline once: it reads the primary
// product record (and optionally a competitor record) from disk, generates
// the three content pages, and writes each as a pretty-printed JSON document.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kasparro/content-engine/config"
	"github.com/kasparro/content-engine/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Kasparro content generation")
	log.Printf("Input: %s", cfg.Pipeline.InputFile)

	rawProduct, err := readRecord(cfg.Pipeline.InputFile)
	if err != nil {
		log.Fatalf("Failed to read product record: %v", err)
	}

	var rawCompetitor map[string]any
	if cfg.Pipeline.CompetitorFile != "" {
		log.Printf("Competitor: %s", cfg.Pipeline.CompetitorFile)
		rawCompetitor, err = readRecord(cfg.Pipeline.CompetitorFile)
		if err != nil {
			log.Fatalf("Failed to read competitor record: %v", err)
		}
	}

	pipeline := usecase.NewPipelineService(usecase.PipelineConfig{
		EnableDebugLogging: cfg.Generation.EnableDebugLogging,
	})

	result, err := pipeline.Run(context.Background(), rawProduct, rawCompetitor)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	// All three pages rendered; only now is anything committed to disk
	if err := os.MkdirAll(cfg.Pipeline.OutputDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	outputs := []struct {
		name string
		page any
	}{
		{"faq.json", result.FAQ},
		{"product_page.json", result.ProductPage},
		{"comparison_page.json", result.ComparisonPage},
	}

	for _, output := range outputs {
		path := filepath.Join(cfg.Pipeline.OutputDir, output.name)
		if err := writePage(path, output.page); err != nil {
			log.Fatalf("Failed to write %s: %v", output.name, err)
		}
		log.Printf("Saved %s", path)
	}

	log.Printf("All pages generated")
}

// readRecord reads one raw JSON record from disk
func readRecord(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	return raw, nil
}

// writePage serializes one page envelope as a pretty-printed JSON document
func writePage(path string, page any) error {
	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stdout)
}
