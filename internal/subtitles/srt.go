package subtitles

import (
	"fmt"
	"strings"
)

// FormatTimestamp renders milliseconds as an SRT timestamp (HH:MM:SS,mmm).
// Fractional milliseconds are truncated.
func FormatTimestamp(ms float64) string {
	if ms < 0 {
		ms = 0
	}
	total := int64(ms)
	hours := total / 3_600_000
	minutes := (total % 3_600_000) / 60_000
	seconds := (total % 60_000) / 1000
	millis := total % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// Render produces SRT text: numbered cues separated by a blank line.
func Render(cues []Cue) string {
	var sb strings.Builder
	for i, cue := range cues {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d\n", cue.Index)
		fmt.Fprintf(&sb, "%s --> %s\n", FormatTimestamp(cue.StartMS), FormatTimestamp(cue.EndMS))
		sb.WriteString(cue.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}
