package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	ScriptFileName        = "script_output.json"
	AudioDirName          = "audio"
	ImagesDirName         = "images"
	AudioMetadataFileName = "audio_metadata.json"
)

var (
	// ErrNotFound marks a required project file or folder that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidJSON marks a project file that could not be decoded.
	ErrInvalidJSON = errors.New("invalid JSON")
)

// Project locates the inputs of a single video project folder.
type Project struct {
	Root       string
	ScriptPath string
	AudioDir   string
	ImagesDir  string
}

// Open resolves root to an absolute path and confirms it is a directory.
func Open(root string) (*Project, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("project folder is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project folder %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("project folder %s: %w", abs, ErrNotFound)
		}
		return nil, fmt.Errorf("stat project folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project folder %s is not a directory: %w", abs, ErrNotFound)
	}
	return &Project{
		Root:       abs,
		ScriptPath: filepath.Join(abs, ScriptFileName),
		AudioDir:   filepath.Join(abs, AudioDirName),
		ImagesDir:  filepath.Join(abs, ImagesDirName),
	}, nil
}

// AudioMetadataPath returns the location of the narration duration manifest.
func (p *Project) AudioMetadataPath() string {
	return filepath.Join(p.AudioDir, AudioMetadataFileName)
}

// RequireDir fails with ErrNotFound when dir is missing or not a directory.
func RequireDir(dir, label string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s folder %s: %w", label, dir, ErrNotFound)
		}
		return fmt.Errorf("stat %s folder: %w", label, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s folder %s is not a directory: %w", label, dir, ErrNotFound)
	}
	return nil
}
