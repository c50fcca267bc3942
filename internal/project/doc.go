// Package project models a video project folder: the ordered script entries in
// script_output.json, the narration clips under audio/, and the generated
// scene images under images/.
//
// Image naming is shared by every command: a scene with one image is stored
// as image_NNN.<fmt>, a scene with several as image_NNN_MM.<fmt>, both
// 1-based and zero-padded.
package project
