package verify

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

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

func TestVerifyReportsMissingPerScene(t *testing.T) {
	fx := testsupport.NewProject(t).
		WriteScript(
			testsupport.Scene{Script: "one", Prompt: "p1"},
			testsupport.Scene{Script: "two", Prompt: "p2", ImageCount: 3},
			testsupport.Scene{Script: "three", Prompt: "p3", ImageCount: 1},
		).
		WriteImages("image_001.png", "image_002_02.png", "image_003_01.png")

	res, err := Verify(openProject(t, fx), "png")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if res.ExpectedCount != 5 || res.ActualCount != 2 {
		t.Fatalf("counts = %d/%d, want 5/2", res.ExpectedCount, res.ActualCount)
	}
	if res.AllComplete {
		t.Fatal("expected incomplete result")
	}
	want := []Missing{
		{Index: 2, MissingFiles: []string{"image_002_01.png", "image_002_03.png"}, Prompt: "p2", Script: "two", ExpectedCount: 3, MissingCount: 2},
		{Index: 3, MissingFiles: []string{"image_003.png"}, Prompt: "p3", Script: "three", ExpectedCount: 1, MissingCount: 1},
	}
	if !reflect.DeepEqual(res.Missing, want) {
		t.Fatalf("missing = %+v, want %+v", res.Missing, want)
	}

	total := 0
	for _, m := range res.Missing {
		total += m.MissingCount
	}
	if total != res.MissingCount() {
		t.Fatalf("per-scene missing %d != expected-actual %d", total, res.MissingCount())
	}
}

func TestVerifyComplete(t *testing.T) {
	fx := testsupport.NewProject(t).
		WriteScript(testsupport.Scene{Script: "a", ImageCount: 2}).
		WriteImages("image_001_01.jpg", "image_001_02.jpg")

	res, err := Verify(openProject(t, fx), "jpg")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !res.AllComplete || res.ActualCount != 2 || len(res.Missing) != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"expected_count":2,"actual_count":2,"missing":[],"all_complete":true}` {
		t.Fatalf("unexpected JSON %s", data)
	}
}

func TestVerifyMissingInputs(t *testing.T) {
	fx := testsupport.NewProject(t)
	if _, err := Verify(openProject(t, fx), "png"); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing script, got %v", err)
	}

	fx.WriteScript(testsupport.Scene{Script: "a"})
	if err := os.RemoveAll(fx.Path("images")); err != nil {
		t.Fatal(err)
	}
	if _, err := Verify(openProject(t, fx), "png"); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing images folder, got %v", err)
	}
}

func TestReportRoundTrip(t *testing.T) {
	res := Result{
		ExpectedCount: 4,
		ActualCount:   1,
		Missing: []Missing{
			{Index: 1, MissingFiles: []string{"image_001_02.png"}, Prompt: "p", Script: "s", ExpectedCount: 2, MissingCount: 1},
			{Index: 2, MissingFiles: []string{"image_002_01.png", "image_002_02.png"}, Prompt: "q", Script: "t", ExpectedCount: 2, MissingCount: 2},
		},
	}
	now := time.Date(2026, 3, 4, 5, 6, 7, 123456000, time.UTC)
	report := NewReport(res, "/videos/demo", now)

	if report.GeneratedAt != "2026-03-04T05:06:07.123456" {
		t.Fatalf("generated_at = %q", report.GeneratedAt)
	}
	want := Summary{ExpectedCount: 4, ActualCount: 1, MissingCount: 3, MissingPromptsCount: 2}
	if report.Summary != want {
		t.Fatalf("summary = %+v, want %+v", report.Summary, want)
	}

	path := DefaultReportPath(t.TempDir())
	if err := SaveReport(path, report); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(testsupport.ReadFile(t, path), &decoded); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if !reflect.DeepEqual(decoded, report) {
		t.Fatalf("decoded = %+v, want %+v", decoded, report)
	}
	if filepath.Base(path) != ReportFileName {
		t.Fatalf("unexpected report name %s", path)
	}
}
