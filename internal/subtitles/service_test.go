package subtitles

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"reelprep/internal/logging"
	"reelprep/internal/media/audio"
	"reelprep/internal/project"
	"reelprep/internal/testsupport"
)

func openProject(t *testing.T, fx *testsupport.ProjectFixture) *project.Project {
	t.Helper()
	p, err := project.Open(fx.Root)
	if err != nil {
		t.Fatalf("project.Open: %v", err)
	}
	return p
}

func TestGenerateFromMetadata(t *testing.T) {
	fx := testsupport.NewProject(t).
		WriteScript(
			testsupport.Scene{Script: "Short opening line."},
			testsupport.Scene{Script: "one two three four five six"},
		).
		WriteAudioMetadata(1500, 3000)
	cfg := testsupport.NewConfig(t, testsupport.WithMaxWords(4))

	svc := NewService(cfg, logging.NewNop(), nil)
	res, err := svc.Generate(context.Background(), GenerateRequest{Project: openProject(t, fx)})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.OutputPath != fx.Path("subtitles.srt") {
		t.Fatalf("output = %s", res.OutputPath)
	}
	if res.CueCount != 3 || len(res.SplitScenes) != 1 || len(res.Warnings) != 0 {
		t.Fatalf("unexpected result %+v", res)
	}

	want := strings.Join([]string{
		"1", "00:00:00,000 --> 00:00:01,500", "Short opening line.", "",
		"2", "00:00:01,500 --> 00:00:03,500", "one two three four", "",
		"3", "00:00:03,500 --> 00:00:04,500", "five six", "",
	}, "\n")
	if got := string(testsupport.ReadFile(t, res.OutputPath)); got != want {
		t.Fatalf("srt mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestGenerateMismatchUsesOverlap(t *testing.T) {
	fx := testsupport.NewProject(t).
		WriteScript(
			testsupport.Scene{Script: "first"},
			testsupport.Scene{Script: "second"},
			testsupport.Scene{Script: "third"},
		).
		WriteAudioMetadata(1000, 1000)
	output := filepath.Join(t.TempDir(), "custom", "out.srt")

	svc := NewService(testsupport.NewConfig(t), nil, nil)
	res, err := svc.Generate(context.Background(), GenerateRequest{
		Project:    openProject(t, fx),
		MaxWords:   12,
		OutputPath: output,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.CueCount != 2 || res.AudioScenes != 2 || res.ScriptScenes != 3 {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "count mismatch") {
		t.Fatalf("expected a mismatch warning, got %q", res.Warnings)
	}
	if res.OutputPath != output {
		t.Fatalf("output = %s, want %s", res.OutputPath, output)
	}
}

func TestGenerateMissingMetadata(t *testing.T) {
	fx := testsupport.NewProject(t).WriteScript(testsupport.Scene{Script: "x"})
	svc := NewService(testsupport.NewConfig(t), nil, nil)
	_, err := svc.Generate(context.Background(), GenerateRequest{Project: openProject(t, fx)})
	if !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGenerateProbesAudioFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}
	fx := testsupport.NewProject(t).
		WriteScript(
			testsupport.Scene{Script: "alpha beta"},
			testsupport.Scene{Script: "gamma"},
		).
		WriteAudioFiles(2, ".m4a")
	cfg := testsupport.NewConfig(t,
		testsupport.WithAudioExtensions(".m4a"),
		testsupport.WithFFprobeStub(2.25),
	)
	prober := audio.NewProber(cfg.Media.FFprobeBinary, nil)

	res, err := NewService(cfg, nil, prober).Generate(context.Background(), GenerateRequest{
		Project:    openProject(t, fx),
		ProbeAudio: true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.DurationMS != 4500 {
		t.Fatalf("duration = %v, want 4500", res.DurationMS)
	}
	srt := string(testsupport.ReadFile(t, res.OutputPath))
	if !strings.Contains(srt, "00:00:02,250 --> 00:00:04,500\ngamma") {
		t.Fatalf("unexpected srt:\n%s", srt)
	}
}
