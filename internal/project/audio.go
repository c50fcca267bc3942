package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// AudioClip is a narration clip listed in audio_metadata.json.
type AudioClip struct {
	File       string  `json:"file,omitempty"`
	DurationMS float64 `json:"duration_ms"`
}

// LoadAudioMetadata reads clip durations. The manifest is either a bare array
// of clips or an object with an "audio_files" array.
func LoadAudioMetadata(path string) ([]AudioClip, error) {
	data, err := readJSONFile(path, "audio metadata")
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var clips []AudioClip
		if err := json.Unmarshal(trimmed, &clips); err != nil {
			return nil, fmt.Errorf("decode %s: %w: %v", path, ErrInvalidJSON, err)
		}
		return clips, nil
	}
	var wrapper struct {
		AudioFiles []AudioClip `json:"audio_files"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", path, ErrInvalidJSON, err)
	}
	return wrapper.AudioFiles, nil
}

// ListAudioFiles returns the scene clips in dir: regular files whose name
// starts with prefix and whose extension is in exts, sorted by name.
func ListAudioFiles(dir, prefix string, exts []string) ([]string, error) {
	if err := RequireDir(dir, "audio"); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list audio folder: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if !slices.Contains(exts, strings.ToLower(filepath.Ext(name))) {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no audio files in %s: %w", dir, ErrNotFound)
	}
	slices.Sort(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}
