package config

import (
	"fmt"
	"os"

	"github.com/rpgo/numutil/internal/calculation"
	"github.com/rpgo/numutil/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of batch operation files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a batch from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Batch, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a batch document
func (ip *InputParser) Parse(data []byte) (*domain.Batch, error) {
	var batch domain.Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateBatch(&batch); err != nil {
		return nil, fmt.Errorf("batch validation failed: %w", err)
	}

	return &batch, nil
}

// ValidateBatch validates the loaded batch
func (ip *InputParser) ValidateBatch(batch *domain.Batch) error {
	if len(batch.Operations) == 0 {
		return fmt.Errorf("no operations provided")
	}

	for i, req := range batch.Operations {
		if req.Operation == "" {
			return fmt.Errorf("operation %d: op is required", i)
		}
		if err := calculation.ValidateRequest(req); err != nil {
			return fmt.Errorf("operation %d (%s) validation failed: %w", i, req.Label(), err)
		}
	}

	return nil
}
