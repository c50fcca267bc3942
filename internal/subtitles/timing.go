package subtitles

// Cue is one timed subtitle line. Times are milliseconds from the start of
// the narration.
type Cue struct {
	Index   int
	Text    string
	StartMS float64
	EndMS   float64
}

// Allocate spreads the interval [startMS, endMS) across segments in
// proportion to each segment's word count. Cues are contiguous and the last
// one ends exactly at endMS. Cue indexes are left for the caller to assign.
func Allocate(segments []string, startMS, endMS float64) []Cue {
	if len(segments) == 0 {
		return nil
	}
	counts := make([]int, len(segments))
	total := 0
	for i, seg := range segments {
		counts[i] = WordCount(seg)
		total += counts[i]
	}

	span := endMS - startMS
	cues := make([]Cue, len(segments))
	cursor := startMS
	cumulative := 0
	for i, seg := range segments {
		cumulative += counts[i]
		var end float64
		switch {
		case i == len(segments)-1:
			end = endMS
		case total == 0:
			end = startMS + span*float64(i+1)/float64(len(segments))
		default:
			end = startMS + span*float64(cumulative)/float64(total)
		}
		cues[i] = Cue{Text: seg, StartMS: cursor, EndMS: end}
		cursor = end
	}
	return cues
}
