// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// It is the fallback duration source for audio containers that have no
// native Go decoder in internal/media/audio.
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns parsed Result
package ffprobe
