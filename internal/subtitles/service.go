package subtitles

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"reelprep/internal/config"
	"reelprep/internal/fileutil"
	"reelprep/internal/logging"
	"reelprep/internal/project"
)

// DurationProber measures an audio clip.
type DurationProber interface {
	Duration(ctx context.Context, path string) (time.Duration, error)
}

// GenerateRequest describes a single SRT generation.
type GenerateRequest struct {
	Project    *project.Project
	MaxWords   int
	OutputPath string
	// ProbeAudio measures the audio files instead of reading audio_metadata.json.
	ProbeAudio bool
}

// GenerateResult summarises the written subtitle file.
type GenerateResult struct {
	OutputPath   string
	CueCount     int
	SplitScenes  []SplitInfo
	ScriptScenes int
	AudioScenes  int
	DurationMS   float64
	Warnings     []string
}

// Service turns a project's script and narration timing into an SRT file.
type Service struct {
	cfg    *config.Config
	logger *slog.Logger
	prober DurationProber
}

// NewService constructs a subtitle service. prober may be nil when callers
// never request ProbeAudio.
func NewService(cfg *config.Config, logger *slog.Logger, prober DurationProber) *Service {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return &Service{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "subtitles"),
		prober: prober,
	}
}

// Generate writes the SRT file for req.Project and reports what it produced.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	if req.Project == nil {
		return GenerateResult{}, fmt.Errorf("generate subtitles: project is required")
	}
	maxWords := req.MaxWords
	if maxWords <= 0 {
		maxWords = s.cfg.Subtitles.MaxWords
	}
	if maxWords <= 0 {
		return GenerateResult{}, fmt.Errorf("max words must be positive")
	}

	durations, err := s.sceneDurations(ctx, req)
	if err != nil {
		return GenerateResult{}, err
	}
	entries, err := project.LoadScript(req.Project.ScriptPath)
	if err != nil {
		return GenerateResult{}, err
	}

	result := GenerateResult{
		ScriptScenes: len(entries),
		AudioScenes:  len(durations),
	}
	if len(durations) != len(entries) {
		msg := fmt.Sprintf("Audio files (%d) and script entries (%d) count mismatch", len(durations), len(entries))
		result.Warnings = append(result.Warnings, msg)
		logging.WarnWithContext(s.logger, "audio and script counts differ",
			"subtitles_count_mismatch",
			logging.Int("audio_count", len(durations)),
			logging.Int("script_count", len(entries)),
			logging.String(logging.FieldImpact, "only the overlapping scenes receive subtitles"),
			logging.String(logging.FieldErrorHint, "regenerate audio or script so each scene has one clip"),
		)
	}

	n := min(len(durations), len(entries))
	scenes := make([]Scene, n)
	for i := range n {
		scenes[i] = Scene{Text: entries[i].Script, DurationMS: durations[i]}
	}
	built := Build(scenes, maxWords)
	for _, split := range built.SplitScenes {
		s.logger.Info("scene split",
			logging.Int("scene", split.Scene),
			logging.Int("segments", split.Segments),
			logging.Int("words", split.Words),
		)
	}

	output := req.OutputPath
	if output == "" {
		output = filepath.Join(req.Project.Root, s.cfg.Subtitles.OutputName)
	}
	if err := fileutil.WriteFileAtomic(output, []byte(Render(built.Cues)), 0o644); err != nil {
		return GenerateResult{}, fmt.Errorf("write subtitles: %w", err)
	}

	result.OutputPath = output
	result.CueCount = len(built.Cues)
	result.SplitScenes = built.SplitScenes
	result.DurationMS = built.DurationMS
	s.logger.Info("subtitles written",
		logging.String("output", output),
		logging.Int("cues", result.CueCount),
		logging.Int("split_scenes", len(result.SplitScenes)),
	)
	return result, nil
}

func (s *Service) sceneDurations(ctx context.Context, req GenerateRequest) ([]float64, error) {
	if !req.ProbeAudio {
		clips, err := project.LoadAudioMetadata(req.Project.AudioMetadataPath())
		if err != nil {
			return nil, err
		}
		durations := make([]float64, len(clips))
		for i, clip := range clips {
			durations[i] = clip.DurationMS
		}
		return durations, nil
	}

	if s.prober == nil {
		return nil, fmt.Errorf("audio probing requested without a prober")
	}
	paths, err := project.ListAudioFiles(req.Project.AudioDir, s.cfg.Audio.Prefix, s.cfg.Audio.Extensions)
	if err != nil {
		return nil, err
	}
	durations := make([]float64, len(paths))
	for i, path := range paths {
		d, err := s.prober.Duration(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("measure %s: %w", filepath.Base(path), err)
		}
		durations[i] = float64(d) / float64(time.Millisecond)
	}
	return durations, nil
}
