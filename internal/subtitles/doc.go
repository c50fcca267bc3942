// Package subtitles generates SRT files from a project's narration timing and
// script text.
//
// Each scene occupies the span of its audio clip. Long narration is split into
// cues of at most a configured number of words and the scene's span is shared
// between those cues in proportion to their word counts, so consecutive cues
// touch and the last one ends exactly where the clip does.
package subtitles
