// Package audio reads narration clip durations.
//
// MP3, FLAC, and WAV files are measured in-process from their decoded sample
// count and sample rate. Any other container, or a file a native decoder
// rejects, is handed to ffprobe when it is installed; otherwise the caller
// receives ErrUnsupportedFormat.
package audio
