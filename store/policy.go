package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"solver/searcher"
)

// WritePolicy writes every policy of table as {history: {label: probability}}.
// Every label of the move alphabet is present, unchosen moves at 0.
func WritePolicy(outPath string, table *searcher.PolicyTable) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.Marshal(table.Distributions())
	if err != nil {
		return fmt.Errorf("encode policy: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write policy: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename policy: %w", err)
	}
	return nil
}

// ReadPolicy loads a policy artifact over a move alphabet of the given size.
// Every policy must be valid and deterministic.
func ReadPolicy(path string, labels int) (*searcher.PolicyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy: %w", err)
	}

	var policies map[string]searcher.Policy
	if err := json.Unmarshal(data, &policies); err != nil {
		return nil, fmt.Errorf("decode policy %s: %w", path, err)
	}

	table, err := searcher.PolicyTableFrom(labels, policies)
	if err != nil {
		return nil, fmt.Errorf("policy %s: %w", path, err)
	}
	return table, nil
}
