package subtitles

// Scene is one narration clip and the text spoken over it.
type Scene struct {
	Text       string
	DurationMS float64
}

// SplitInfo records a scene whose text needed more than one cue.
type SplitInfo struct {
	Scene    int // 1-based
	Segments int
	Words    int
}

// Result is the full cue list for a run of scenes.
type Result struct {
	Cues        []Cue
	SplitScenes []SplitInfo
	DurationMS  float64
}

// Build lays scenes end to end starting at zero and emits numbered cues for
// each. A scene without words produces no cue but still occupies its time.
func Build(scenes []Scene, maxWords int) Result {
	var res Result
	cursor := 0.0
	index := 1
	for i, scene := range scenes {
		start := cursor
		end := start + scene.DurationMS
		segments := Split(scene.Text, maxWords)
		if len(segments) > 1 {
			res.SplitScenes = append(res.SplitScenes, SplitInfo{
				Scene:    i + 1,
				Segments: len(segments),
				Words:    WordCount(scene.Text),
			})
		}
		for _, cue := range Allocate(segments, start, end) {
			cue.Index = index
			index++
			res.Cues = append(res.Cues, cue)
		}
		cursor = end
	}
	res.DurationMS = cursor
	return res
}
