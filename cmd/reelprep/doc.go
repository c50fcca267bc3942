// Package main hosts the reelprep CLI entrypoint and command graph.
//
// Each subcommand operates on a single project folder: srt writes subtitles,
// batch writes the editor placement files, and verify reports missing
// images. Configuration resolution and logger construction live in the
// shared command context; the work itself belongs to the internal packages.
package main
