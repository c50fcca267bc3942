package batch

import (
	"fmt"
	"path/filepath"

	"reelprep/internal/fileutil"
)

const (
	ImagesFileName = "images_batch.json"
	AudiosFileName = "audios_batch.json"
)

// Paths locates the written batch files.
type Paths struct {
	Images string
	Audios string
}

// Write stores the image and audio instruction lists in dir.
func Write(dir string, res Result) (Paths, error) {
	paths := Paths{
		Images: filepath.Join(dir, ImagesFileName),
		Audios: filepath.Join(dir, AudiosFileName),
	}
	if err := fileutil.WriteJSON(paths.Images, res.Images); err != nil {
		return Paths{}, fmt.Errorf("write images batch: %w", err)
	}
	if err := fileutil.WriteJSON(paths.Audios, res.Audios); err != nil {
		return Paths{}, fmt.Errorf("write audios batch: %w", err)
	}
	return paths, nil
}
