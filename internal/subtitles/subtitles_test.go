package subtitles

import (
	"strings"
	"testing"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "w" + strings.Repeat("x", i%3)
	}
	return strings.Join(parts, " ")
}

func TestSplitSegmentCounts(t *testing.T) {
	tests := []struct {
		words, limit, want int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{24, 12, 2},
		{25, 12, 3},
		{7, 3, 3},
		{5, 1, 5},
	}
	for _, tt := range tests {
		text := words(tt.words)
		segments := Split(text, tt.limit)
		if len(segments) != tt.want {
			t.Fatalf("Split(%d words, %d) produced %d segments, want %d", tt.words, tt.limit, len(segments), tt.want)
		}
		var rebuilt []string
		for _, seg := range segments {
			n := WordCount(seg)
			if n == 0 || n > tt.limit {
				t.Fatalf("segment %q has %d words, limit %d", seg, n, tt.limit)
			}
			rebuilt = append(rebuilt, strings.Fields(seg)...)
		}
		if strings.Join(rebuilt, " ") != strings.Join(strings.Fields(text), " ") {
			t.Fatalf("segments do not reconstruct the input: %q", segments)
		}
	}
}

func TestSplitKeepsShortTextWhole(t *testing.T) {
	got := Split("  Hello,   world!  ", 12)
	if len(got) != 1 || got[0] != "Hello,   world!" {
		t.Fatalf("Split returned %q", got)
	}
	if got := Split(" \t\n", 12); got != nil {
		t.Fatalf("expected no segments for blank text, got %q", got)
	}
}

func TestSplitNormalizesToNFC(t *testing.T) {
	decomposed := "Cafe\u0301 ouvert"
	got := Split(decomposed, 12)
	if len(got) != 1 || got[0] != "Caf\u00e9 ouvert" {
		t.Fatalf("Split returned %q", got)
	}
}

func TestSplitUsesDefaultForNonPositiveLimit(t *testing.T) {
	if got := Split(words(13), 0); len(got) != 2 {
		t.Fatalf("expected default limit of %d, got %d segments", DefaultMaxWords, len(got))
	}
}

func TestAllocateProportionalAndContiguous(t *testing.T) {
	segments := Split(words(30), 12)
	cues := Allocate(segments, 1000, 4000)
	if len(cues) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(cues))
	}
	wantEnds := []float64{2200, 3400, 4000}
	for i, cue := range cues {
		if cue.EndMS != wantEnds[i] {
			t.Fatalf("cue %d ends at %v, want %v", i, cue.EndMS, wantEnds[i])
		}
		if i == 0 && cue.StartMS != 1000 {
			t.Fatalf("first cue starts at %v", cue.StartMS)
		}
		if i > 0 && cue.StartMS != cues[i-1].EndMS {
			t.Fatalf("gap between cue %d and %d", i-1, i)
		}
	}
}

func TestAllocateSumsExactlyForAwkwardDurations(t *testing.T) {
	segments := Split(words(37), 5)
	start, end := 123.456, 123.456+9876.543
	cues := Allocate(segments, start, end)
	if cues[0].StartMS != start || cues[len(cues)-1].EndMS != end {
		t.Fatalf("cues span %v..%v, want %v..%v", cues[0].StartMS, cues[len(cues)-1].EndMS, start, end)
	}
	for i := 1; i < len(cues); i++ {
		if cues[i].StartMS != cues[i-1].EndMS {
			t.Fatalf("cue %d not contiguous", i)
		}
		if cues[i].EndMS < cues[i].StartMS {
			t.Fatalf("cue %d runs backwards", i)
		}
	}
	if Allocate(nil, 0, 100) != nil {
		t.Fatal("expected no cues for no segments")
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		ms   float64
		want string
	}{
		{0, "00:00:00,000"},
		{999.9, "00:00:00,999"},
		{61_001, "00:01:01,001"},
		{3_723_004, "01:02:03,004"},
		{36_000_000, "10:00:00,000"},
		{-5, "00:00:00,000"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.ms); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestBuildChainsScenesAndNumbersCues(t *testing.T) {
	res := Build([]Scene{
		{Text: "one two three", DurationMS: 1500},
		{Text: "", DurationMS: 500},
		{Text: "a b c d e", DurationMS: 2000},
	}, 3)

	if len(res.Cues) != 3 {
		t.Fatalf("expected 3 cues, got %d: %+v", len(res.Cues), res.Cues)
	}
	if res.Cues[1].StartMS != 2000 || res.Cues[1].EndMS != 3200 {
		t.Fatalf("second cue spans %v..%v", res.Cues[1].StartMS, res.Cues[1].EndMS)
	}
	if res.Cues[2].StartMS != 3200 || res.Cues[2].EndMS != 4000 {
		t.Fatalf("third cue spans %v..%v", res.Cues[2].StartMS, res.Cues[2].EndMS)
	}
	for i, cue := range res.Cues {
		if cue.Index != i+1 {
			t.Fatalf("cue %d has index %d", i, cue.Index)
		}
	}
	if len(res.SplitScenes) != 1 || res.SplitScenes[0] != (SplitInfo{Scene: 3, Segments: 2, Words: 5}) {
		t.Fatalf("unexpected split scenes %+v", res.SplitScenes)
	}
	if res.DurationMS != 4000 {
		t.Fatalf("duration = %v, want 4000", res.DurationMS)
	}
}

func TestRenderLayout(t *testing.T) {
	got := Render([]Cue{
		{Index: 1, Text: "Hello there.", StartMS: 0, EndMS: 1250},
		{Index: 2, Text: "General Kenobi.", StartMS: 1250, EndMS: 3000.7},
	})
	want := "1\n00:00:00,000 --> 00:00:01,250\nHello there.\n\n2\n00:00:01,250 --> 00:00:03,000\nGeneral Kenobi.\n"
	if got != want {
		t.Fatalf("Render mismatch:\n got %q\nwant %q", got, want)
	}
	if Render(nil) != "" {
		t.Fatal("expected empty output for no cues")
	}
}
