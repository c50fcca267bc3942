package batch

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"reelprep/internal/config"
	"reelprep/internal/logging"
	"reelprep/internal/project"
)

const (
	ImageTrack = "main"
	AudioTrack = "audio_main"
)

// ImageInstruction places one image on the video track. Times are seconds.
type ImageInstruction struct {
	ImageURL       string  `json:"image_url"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	TrackName      string  `json:"track_name"`
	IntroAnimation string  `json:"intro_animation,omitempty"`
	Transition     string  `json:"transition,omitempty"`
}

// AudioInstruction places one whole narration clip on the audio track.
type AudioInstruction struct {
	AudioURL    string  `json:"audio_url"`
	Start       int     `json:"start"`
	End         float64 `json:"end"`
	TargetStart float64 `json:"target_start"`
	TrackName   string  `json:"track_name"`
}

// Stats summarises a prepared batch.
type Stats struct {
	TotalScenes          int     `json:"total_scenes"`
	TotalImages          int     `json:"total_images"`
	TotalAudios          int     `json:"total_audios"`
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
	TotalDurationMinutes float64 `json:"total_duration_minutes"`
}

// Result is the prepared batch for a project.
type Result struct {
	Images   []ImageInstruction
	Audios   []AudioInstruction
	Stats    Stats
	Warnings []string
}

// DurationProber measures an audio clip.
type DurationProber interface {
	Duration(ctx context.Context, path string) (time.Duration, error)
}

// Builder assembles editor instructions from a project folder.
type Builder struct {
	cfg    *config.Config
	prober DurationProber
	logger *slog.Logger
}

// NewBuilder returns a Builder that reads clip lengths through prober.
func NewBuilder(cfg *config.Config, prober DurationProber, logger *slog.Logger) *Builder {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return &Builder{
		cfg:    cfg,
		prober: prober,
		logger: logging.NewComponentLogger(logger, "batch"),
	}
}

// Prepare walks the script in order, pairing each scene with the audio clip
// at the same position. Scene images split the clip evenly. Processing stops
// at the first scene without a clip; unresolved images are skipped. Both
// conditions are reported as warnings.
func (b *Builder) Prepare(ctx context.Context, p *project.Project) (Result, error) {
	if p == nil {
		return Result{}, fmt.Errorf("prepare batch: project is required")
	}
	if b.prober == nil {
		return Result{}, fmt.Errorf("prepare batch: duration prober is required")
	}
	entries, err := project.LoadScript(p.ScriptPath)
	if err != nil {
		return Result{}, err
	}
	audioPaths, err := project.ListAudioFiles(p.AudioDir, b.cfg.Audio.Prefix, b.cfg.Audio.Extensions)
	if err != nil {
		return Result{}, err
	}
	if err := project.RequireDir(p.ImagesDir, "images"); err != nil {
		return Result{}, err
	}

	res := Result{
		Images: []ImageInstruction{},
		Audios: []AudioInstruction{},
	}
	var accumulated float64
	for sceneIdx, entry := range entries {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if sceneIdx >= len(audioPaths) {
			b.warn(&res, fmt.Sprintf("Scene %d: No corresponding audio file", sceneIdx+1),
				"batch_audio_exhausted",
				logging.Int("scene", sceneIdx+1),
				logging.Int("audio_count", len(audioPaths)),
				logging.String(logging.FieldImpact, "remaining scenes are left out of the batch"),
			)
			break
		}

		audioPath := audioPaths[sceneIdx]
		d, err := b.prober.Duration(ctx, audioPath)
		if err != nil {
			return Result{}, fmt.Errorf("scene %d audio: %w", sceneIdx+1, err)
		}
		audioSeconds := d.Seconds()
		perImage := audioSeconds / float64(entry.ImageCount)
		sceneStart := accumulated

		for imgIdx := range entry.ImageCount {
			path := project.ResolveImagePath(p.ImagesDir, sceneIdx, imgIdx, entry.ImageCount, b.cfg.Images.Format)
			if path == "" {
				b.warn(&res, fmt.Sprintf("Scene %d: Missing image %d/%d", sceneIdx+1, imgIdx+1, entry.ImageCount),
					"batch_image_missing",
					logging.Int("scene", sceneIdx+1),
					logging.Int("image", imgIdx+1),
					logging.String(logging.FieldErrorHint, "run reelprep verify to list missing images"),
				)
				continue
			}
			start := sceneStart + float64(imgIdx)*perImage
			inst := ImageInstruction{
				ImageURL:  path,
				Start:     round(start, 3),
				End:       round(start+perImage, 3),
				TrackName: ImageTrack,
			}
			if imgIdx == 0 {
				inst.IntroAnimation = IntroAnimationFor(sceneIdx)
				inst.Transition = TransitionFor(sceneIdx)
			}
			res.Images = append(res.Images, inst)
		}

		res.Audios = append(res.Audios, AudioInstruction{
			AudioURL:    audioPath,
			Start:       0,
			End:         round(audioSeconds, 3),
			TargetStart: round(sceneStart, 3),
			TrackName:   AudioTrack,
		})
		accumulated += audioSeconds
	}

	res.Stats = Stats{
		TotalScenes:          len(entries),
		TotalImages:          len(res.Images),
		TotalAudios:          len(res.Audios),
		TotalDurationSeconds: round(accumulated, 2),
		TotalDurationMinutes: round(accumulated/60, 2),
	}
	b.logger.Info("batch prepared",
		logging.Int("scenes", res.Stats.TotalScenes),
		logging.Int("images", res.Stats.TotalImages),
		logging.Int("audios", res.Stats.TotalAudios),
		logging.Float64("duration_seconds", res.Stats.TotalDurationSeconds),
		logging.Int("warnings", len(res.Warnings)),
	)
	return res, nil
}

func (b *Builder) warn(res *Result, msg, eventType string, attrs ...logging.Attr) {
	res.Warnings = append(res.Warnings, msg)
	logging.WarnWithContext(b.logger, msg, eventType, attrs...)
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
