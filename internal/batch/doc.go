// Package batch prepares timed placement instructions for an external video
// editor: one image track and one audio track, laid out scene by scene from
// the project's narration clips.
//
// Each scene's first image carries an intro animation and a transition drawn
// from fixed pools by scene position.
package batch
