package verify

import (
	"path/filepath"
	"time"

	"reelprep/internal/fileutil"
)

// ReportFileName is written into the project folder when images are missing.
const ReportFileName = "missing_images.json"

// Summary aggregates a verification run.
type Summary struct {
	ExpectedCount       int `json:"expected_count"`
	ActualCount         int `json:"actual_count"`
	MissingCount        int `json:"missing_count"`
	MissingPromptsCount int `json:"missing_prompts_count"`
}

// MissingPrompt is a scene whose images need regenerating.
type MissingPrompt struct {
	Index         int      `json:"index"`
	Prompt        string   `json:"prompt"`
	Script        string   `json:"script"`
	ExpectedCount int      `json:"expected_count"`
	MissingFiles  []string `json:"missing_files"`
	MissingCount  int      `json:"missing_count"`
}

// Report is the persisted form of a Result, shaped for re-running image
// generation on just the missing prompts.
type Report struct {
	GeneratedAt    string          `json:"generated_at"`
	ProjectFolder  string          `json:"project_folder"`
	Summary        Summary         `json:"summary"`
	MissingPrompts []MissingPrompt `json:"missing_prompts"`
}

// NewReport builds the report payload for res.
func NewReport(res Result, projectFolder string, now time.Time) Report {
	prompts := make([]MissingPrompt, 0, len(res.Missing))
	for _, m := range res.Missing {
		prompts = append(prompts, MissingPrompt{
			Index:         m.Index,
			Prompt:        m.Prompt,
			Script:        m.Script,
			ExpectedCount: m.ExpectedCount,
			MissingFiles:  m.MissingFiles,
			MissingCount:  m.MissingCount,
		})
	}
	return Report{
		GeneratedAt:   now.Format("2006-01-02T15:04:05.000000"),
		ProjectFolder: projectFolder,
		Summary: Summary{
			ExpectedCount:       res.ExpectedCount,
			ActualCount:         res.ActualCount,
			MissingCount:        res.MissingCount(),
			MissingPromptsCount: len(res.Missing),
		},
		MissingPrompts: prompts,
	}
}

// DefaultReportPath is where SaveReport writes when no path is given.
func DefaultReportPath(projectFolder string) string {
	return filepath.Join(projectFolder, ReportFileName)
}

// SaveReport writes report to path.
func SaveReport(path string, report Report) error {
	return fileutil.WriteJSON(path, report)
}
