package verify

import (
	"fmt"
	"os"

	"reelprep/internal/project"
)

// Missing lists the absent images of one scene.
type Missing struct {
	Index         int      `json:"index"`
	MissingFiles  []string `json:"missing_files"`
	Prompt        string   `json:"prompt"`
	Script        string   `json:"script"`
	ExpectedCount int      `json:"expected_count"`
	MissingCount  int      `json:"missing_count"`
}

// Result compares the images a script expects with those on disk.
type Result struct {
	ExpectedCount int       `json:"expected_count"`
	ActualCount   int       `json:"actual_count"`
	Missing       []Missing `json:"missing"`
	AllComplete   bool      `json:"all_complete"`
}

// MissingCount is the number of expected images not found.
func (r Result) MissingCount() int {
	return r.ExpectedCount - r.ActualCount
}

// Verify checks the project's images folder against script_output.json.
// Scene indexes in the result are 1-based.
func Verify(p *project.Project, format string) (Result, error) {
	if p == nil {
		return Result{}, fmt.Errorf("verify images: project is required")
	}
	entries, err := project.LoadScript(p.ScriptPath)
	if err != nil {
		return Result{}, err
	}
	if err := project.RequireDir(p.ImagesDir, "images"); err != nil {
		return Result{}, err
	}
	existing, err := listNames(p.ImagesDir)
	if err != nil {
		return Result{}, err
	}

	res := Result{Missing: []Missing{}}
	for i, entry := range entries {
		index := i + 1
		expected := project.ExpectedImageNames(index, entry.ImageCount, format)
		res.ExpectedCount += len(expected)

		var absent []string
		for _, name := range expected {
			if _, ok := existing[name]; ok {
				res.ActualCount++
				continue
			}
			absent = append(absent, name)
		}
		if len(absent) == 0 {
			continue
		}
		res.Missing = append(res.Missing, Missing{
			Index:         index,
			MissingFiles:  absent,
			Prompt:        entry.Prompt,
			Script:        entry.Script,
			ExpectedCount: entry.ImageCount,
			MissingCount:  len(absent),
		})
	}
	res.AllComplete = len(res.Missing) == 0
	return res, nil
}

func listNames(dir string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list images folder: %w", err)
	}
	names := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		names[entry.Name()] = struct{}{}
	}
	return names, nil
}
