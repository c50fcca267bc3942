package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Entry is one scene of the project's script: narration, the image prompt,
// and how many images were generated for it.
type Entry struct {
	Script     string `json:"script"`
	Prompt     string `json:"prompt"`
	ImageCount int    `json:"image_count"`
}

type rawEntry struct {
	Script     string `json:"script"`
	Prompt     string `json:"prompt"`
	ImageCount *int   `json:"image_count"`
}

// LoadScript reads the ordered scene list. Absent image_count values default
// to 1; a non-positive count is rejected.
func LoadScript(path string) ([]Entry, error) {
	data, err := readJSONFile(path, "script output")
	if err != nil {
		return nil, err
	}
	var raw []rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", path, ErrInvalidJSON, err)
	}
	entries := make([]Entry, 0, len(raw))
	for i, r := range raw {
		count := 1
		if r.ImageCount != nil {
			count = *r.ImageCount
		}
		if count < 1 {
			return nil, fmt.Errorf("scene %d: image_count must be positive, got %d", i+1, count)
		}
		entries = append(entries, Entry{Script: r.Script, Prompt: r.Prompt, ImageCount: count})
	}
	return entries, nil
}

func readJSONFile(path, label string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s %s: %w", label, path, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", label, err)
	}
	return data, nil
}
