package weights

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileStore is a JSON file of {rule_id: weight} pairs, the "simple/default
// path" spec §6 names. Unknown rule ids fall back to 1.0, the same
// uniform default as having no file at all.
type FileStore struct {
	weights map[string]float64
}

// LoadFile reads a JSON object of rule-id -> weight pairs from path.
func LoadFile(path string) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading weights file %q: %w", path, err)
	}
	var weights map[string]float64
	if err := json.Unmarshal(data, &weights); err != nil {
		return nil, fmt.Errorf("parsing weights file %q: %w", path, err)
	}
	return &FileStore{weights: weights}, nil
}

func (s *FileStore) Weight(ruleID string) float64 {
	if w, ok := s.weights[ruleID]; ok {
		return w
	}
	return 1.0
}
