package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"reelprep/internal/project"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestOpenResolvesAbsoluteLayout(t *testing.T) {
	root := t.TempDir()
	p, err := project.Open(root)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if p.ScriptPath != filepath.Join(root, "script_output.json") {
		t.Fatalf("unexpected script path %q", p.ScriptPath)
	}
	if p.AudioMetadataPath() != filepath.Join(root, "audio", "audio_metadata.json") {
		t.Fatalf("unexpected metadata path %q", p.AudioMetadataPath())
	}
	if p.ImagesDir != filepath.Join(root, "images") {
		t.Fatalf("unexpected images dir %q", p.ImagesDir)
	}
}

func TestOpenMissingFolder(t *testing.T) {
	_, err := project.Open(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadScriptDefaultsImageCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script_output.json")
	writeFile(t, path, `[
  {"script": "First scene.", "prompt": "a cat", "image_count": 3},
  {"script": "Second scene.", "prompt": "a dog"},
  {"script": "Third scene.", "prompt": "a bird", "image_count": null, "extra": true}
]`)

	entries, err := project.LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	want := []project.Entry{
		{Script: "First scene.", Prompt: "a cat", ImageCount: 3},
		{Script: "Second scene.", Prompt: "a dog", ImageCount: 1},
		{Script: "Third scene.", Prompt: "a bird", ImageCount: 1},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("entries = %+v, want %+v", entries, want)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := project.LoadScript(filepath.Join(dir, "missing.json")); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	writeFile(t, bad, `[{"script": "unterminated"`)
	if _, err := project.LoadScript(bad); !errors.Is(err, project.ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}

	zero := filepath.Join(dir, "zero.json")
	writeFile(t, zero, `[{"script": "x", "image_count": 0}]`)
	if _, err := project.LoadScript(zero); err == nil {
		t.Fatal("expected error for zero image_count")
	}
}

func TestLoadAudioMetadataAcceptsBothShapes(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "list.json")
	writeFile(t, list, `[{"duration_ms": 1500}, {"duration_ms": 2250.5}]`)
	wrapped := filepath.Join(dir, "wrapped.json")
	writeFile(t, wrapped, `{"audio_files": [{"file": "audio_001.mp3", "duration_ms": 1500}, {"duration_ms": 2250.5}]}`)

	for _, path := range []string{list, wrapped} {
		clips, err := project.LoadAudioMetadata(path)
		if err != nil {
			t.Fatalf("LoadAudioMetadata(%s): %v", filepath.Base(path), err)
		}
		if len(clips) != 2 || clips[0].DurationMS != 1500 || clips[1].DurationMS != 2250.5 {
			t.Fatalf("unexpected clips from %s: %+v", filepath.Base(path), clips)
		}
	}

	empty := filepath.Join(dir, "empty.json")
	writeFile(t, empty, `{"other": 1}`)
	clips, err := project.LoadAudioMetadata(empty)
	if err != nil {
		t.Fatalf("LoadAudioMetadata(empty): %v", err)
	}
	if len(clips) != 0 {
		t.Fatalf("expected no clips, got %+v", clips)
	}
}

func TestListAudioFilesFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"audio_010.mp3", "audio_002.MP3", "audio_001.mp3", "intro.mp3", "audio_003.wav", "audio_metadata.json"} {
		writeFile(t, filepath.Join(dir, name), "x")
	}
	if err := os.Mkdir(filepath.Join(dir, "audio_dir.mp3"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := project.ListAudioFiles(dir, "audio_", []string{".mp3"})
	if err != nil {
		t.Fatalf("ListAudioFiles: %v", err)
	}
	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	want := []string{"audio_001.mp3", "audio_002.MP3", "audio_010.mp3"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}

	if _, err := project.ListAudioFiles(dir, "audio_", []string{".ogg"}); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty listing, got %v", err)
	}
	if _, err := project.ListAudioFiles(filepath.Join(dir, "nope"), "audio_", []string{".mp3"}); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing folder, got %v", err)
	}
}

func TestExpectedImageNames(t *testing.T) {
	tests := []struct {
		index, count int
		want         []string
	}{
		{3, 1, []string{"image_003.png"}},
		{1, 2, []string{"image_001_01.png", "image_001_02.png"}},
		{12, 3, []string{"image_012_01.png", "image_012_02.png", "image_012_03.png"}},
		{4, 0, nil},
	}
	for _, tt := range tests {
		got := project.ExpectedImageNames(tt.index, tt.count, "png")
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExpectedImageNames(%d, %d) = %v, want %v", tt.index, tt.count, got, tt.want)
		}
		again := project.ExpectedImageNames(tt.index, tt.count, "png")
		if !reflect.DeepEqual(got, again) {
			t.Errorf("ExpectedImageNames(%d, %d) not deterministic", tt.index, tt.count)
		}
	}
}

func TestResolveImagePathFallsBackForSingleImage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "image_001.png"), "x")
	writeFile(t, filepath.Join(dir, "image_002_01.png"), "x")
	writeFile(t, filepath.Join(dir, "image_003_02.png"), "x")

	if got := project.ResolveImagePath(dir, 0, 0, 1, "png"); got != filepath.Join(dir, "image_001.png") {
		t.Fatalf("scene 1: got %q", got)
	}
	if got := project.ResolveImagePath(dir, 1, 0, 1, "png"); got != filepath.Join(dir, "image_002_01.png") {
		t.Fatalf("scene 2 fallback: got %q", got)
	}
	if got := project.ResolveImagePath(dir, 2, 1, 2, "png"); got != filepath.Join(dir, "image_003_02.png") {
		t.Fatalf("scene 3 image 2: got %q", got)
	}
	if got := project.ResolveImagePath(dir, 2, 0, 2, "png"); got != "" {
		t.Fatalf("scene 3 image 1 should be unresolved, got %q", got)
	}
}

func TestLockIsExclusive(t *testing.T) {
	p, err := project.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	release, err := p.Lock()
	if err != nil {
		t.Fatalf("first Lock: %v", err)
	}
	if _, err := p.Lock(); err == nil {
		t.Fatal("expected second Lock to fail while held")
	}
	if _, err := os.Stat(filepath.Join(p.Root, project.LockFileName)); err != nil {
		t.Fatalf("expected lock file while held: %v", err)
	}
	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, err := os.Stat(filepath.Join(p.Root, project.LockFileName)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected lock file removed on release, stat err = %v", err)
	}
	release, err = p.Lock()
	if err != nil {
		t.Fatalf("Lock after release: %v", err)
	}
	if err := release(); err != nil {
		t.Fatalf("second release: %v", err)
	}
}
