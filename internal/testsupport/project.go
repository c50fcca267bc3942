package testsupport

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
)

// Scene is a script_output.json entry for fixtures. A zero ImageCount omits
// the field so loaders apply their default.
type Scene struct {
	Script     string `json:"script"`
	Prompt     string `json:"prompt"`
	ImageCount int    `json:"image_count,omitempty"`
}

// ProjectFixture is a project folder under a test temp dir.
type ProjectFixture struct {
	t    testing.TB
	Root string
}

// NewProject creates an empty project folder with audio/ and images/.
func NewProject(t testing.TB) *ProjectFixture {
	t.Helper()

	root := filepath.Join(t.TempDir(), "project")
	p := &ProjectFixture{t: t, Root: root}
	WriteFile(t, filepath.Join(root, "audio", ".keep"), []byte{})
	WriteFile(t, filepath.Join(root, "images", ".keep"), []byte{})
	return p
}

// Path joins elem onto the project root.
func (p *ProjectFixture) Path(elem ...string) string {
	return filepath.Join(append([]string{p.Root}, elem...)...)
}

// WriteScript writes script_output.json.
func (p *ProjectFixture) WriteScript(scenes ...Scene) *ProjectFixture {
	p.t.Helper()
	p.writeJSON(p.Path("script_output.json"), scenes)
	return p
}

// WriteAudioMetadata writes audio/audio_metadata.json as a bare array.
func (p *ProjectFixture) WriteAudioMetadata(durationsMS ...float64) *ProjectFixture {
	p.t.Helper()
	clips := make([]map[string]any, len(durationsMS))
	for i, d := range durationsMS {
		clips[i] = map[string]any{
			"file":        fmt.Sprintf("audio_%03d.mp3", i+1),
			"duration_ms": d,
		}
	}
	p.writeJSON(p.Path("audio", "audio_metadata.json"), clips)
	return p
}

// WriteAudioFiles creates n placeholder clips named audio_NNN<ext>.
func (p *ProjectFixture) WriteAudioFiles(n int, ext string) *ProjectFixture {
	p.t.Helper()
	for i := 1; i <= n; i++ {
		WriteFile(p.t, p.Path("audio", fmt.Sprintf("audio_%03d%s", i, ext)), nil)
	}
	return p
}

// WriteImages creates placeholder image files in images/.
func (p *ProjectFixture) WriteImages(names ...string) *ProjectFixture {
	p.t.Helper()
	for _, name := range names {
		WriteFile(p.t, p.Path("images", name), nil)
	}
	return p
}

func (p *ProjectFixture) writeJSON(path string, v any) {
	p.t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		p.t.Fatalf("encode %s: %v", filepath.Base(path), err)
	}
	WriteFile(p.t, path, data)
}
