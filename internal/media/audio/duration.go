package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/mewkiz/flac"

	"reelprep/internal/logging"
	"reelprep/internal/media/ffprobe"
)

// ErrUnsupportedFormat is returned when no decoder handles the file and
// ffprobe is not available.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// go-mp3 always decodes to 16-bit stereo PCM.
const mp3BytesPerFrame = 4

// Prober reads clip durations from container metadata.
type Prober struct {
	ffprobeBinary string
	logger        *slog.Logger
}

// NewProber builds a prober that falls back to ffprobeBinary for formats
// without a native decoder.
func NewProber(ffprobeBinary string, logger *slog.Logger) *Prober {
	return &Prober{
		ffprobeBinary: strings.TrimSpace(ffprobeBinary),
		logger:        logging.NewComponentLogger(logger, "audio"),
	}
}

// Duration returns the playback length of the audio file at path.
func (p *Prober) Duration(ctx context.Context, path string) (time.Duration, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		d   time.Duration
		err error
	)
	switch ext {
	case ".mp3":
		d, err = mp3Duration(path)
	case ".flac":
		d, err = flacDuration(path)
	case ".wav", ".wave":
		d, err = wavDuration(path)
	default:
		return p.probe(ctx, path, ext)
	}
	if err == nil {
		p.logger.Debug("audio duration decoded",
			logging.String("file", filepath.Base(path)),
			logging.Duration("duration", d),
		)
		return d, nil
	}
	if errors.Is(err, os.ErrNotExist) || !p.ffprobeAvailable() {
		return 0, err
	}
	p.logger.Debug("native decoder failed; trying ffprobe",
		logging.String("file", filepath.Base(path)),
		logging.Error(err),
	)
	return p.probe(ctx, path, ext)
}

func (p *Prober) ffprobeAvailable() bool {
	if p.ffprobeBinary == "" {
		return false
	}
	_, err := exec.LookPath(p.ffprobeBinary)
	return err == nil
}

func (p *Prober) probe(ctx context.Context, path, ext string) (time.Duration, error) {
	if !p.ffprobeAvailable() {
		return 0, fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, ext, filepath.Base(path))
	}
	result, err := ffprobe.Inspect(ctx, p.ffprobeBinary, path)
	if err != nil {
		return 0, err
	}
	if result.AudioStreamCount() == 0 {
		return 0, fmt.Errorf("%w: %s has no audio stream", ErrUnsupportedFormat, filepath.Base(path))
	}
	return result.Duration()
}

func mp3Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, fmt.Errorf("decode mp3 %s: %w", filepath.Base(path), err)
	}
	rate := dec.SampleRate()
	length := dec.Length()
	if rate <= 0 || length <= 0 {
		return 0, fmt.Errorf("decode mp3 %s: no frames", filepath.Base(path))
	}
	return samplesToDuration(length/mp3BytesPerFrame, int64(rate)), nil
}

func flacDuration(path string) (time.Duration, error) {
	stream, err := flac.Open(path)
	if err != nil {
		return 0, fmt.Errorf("decode flac %s: %w", filepath.Base(path), err)
	}
	defer stream.Close()

	info := stream.Info
	if info == nil || info.SampleRate == 0 || info.NSamples == 0 {
		return 0, fmt.Errorf("decode flac %s: stream info lacks sample count", filepath.Base(path))
	}
	return samplesToDuration(int64(info.NSamples), int64(info.SampleRate)), nil
}

func wavDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, fmt.Errorf("decode wav %s: not a valid PCM wave file", filepath.Base(path))
	}
	if err := dec.FwdToPCM(); err != nil {
		return 0, fmt.Errorf("decode wav %s: %w", filepath.Base(path), err)
	}
	frameSize := int64(dec.NumChans) * int64(dec.BitDepth) / 8
	if frameSize <= 0 || dec.SampleRate == 0 {
		return 0, fmt.Errorf("decode wav %s: invalid format header", filepath.Base(path))
	}
	return samplesToDuration(dec.PCMLen()/frameSize, int64(dec.SampleRate)), nil
}

func samplesToDuration(samples, rate int64) time.Duration {
	whole := samples / rate
	rest := samples % rate
	return time.Duration(whole)*time.Second + time.Duration(rest)*time.Second/time.Duration(rate)
}
