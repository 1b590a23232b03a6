package history

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/csheth/homescout/internal/predictor"
)

// Entry records one successful prediction.
type Entry struct {
	RequestID string             `json:"requestId"`
	Features  predictor.Features `json:"features"`
	Price     float64            `json:"price"`
	Currency  string             `json:"currency"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Append stores entries at the end of the history file, creating it if necessary.
func Append(path string, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	existing, err := Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	payload := append(existing, entries...)
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load returns all stored entries in insertion order.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Recent returns up to limit entries, newest first.
func Recent(entries []Entry, limit int) []Entry {
	if limit <= 0 || len(entries) == 0 {
		return nil
	}
	if limit > len(entries) {
		limit = len(entries)
	}
	result := make([]Entry, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, entries[i])
	}
	return result
}
