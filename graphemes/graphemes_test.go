package graphemes

import (
	"strings"
	"testing"
)

func TestClustersCombiningMark(t *testing.T) {
	clusters := Clusters("e\u0301x")
	if len(clusters) != 2 {
		t.Fatalf("clusters=%q, want 2 clusters", clusters)
	}
	if clusters[0] != "e\u0301" {
		t.Fatalf("cluster[0]=%q, want %q", clusters[0], "e\u0301")
	}
}

func TestClustersEmojiPresentation(t *testing.T) {
	clusters := Clusters("\u2764\uFE0F!")
	if len(clusters) != 2 {
		t.Fatalf("clusters=%q, want 2 clusters", clusters)
	}
	if clusters[0] != "\u2764\uFE0F" {
		t.Fatalf("cluster[0]=%q, want heart with VS16", clusters[0])
	}
}

func TestSegmentsTileText(t *testing.T) {
	text := "Hello 世界 \u2764\uFE0F\u200D\U0001F525 a\u0308"
	prev := 0
	var sb strings.Builder
	for start, end := range (Segmenter{}).Segments(text) {
		if start != prev {
			t.Fatalf("cluster starts at %d, want %d", start, prev)
		}
		if end <= start {
			t.Fatalf("empty cluster at %d", start)
		}
		sb.WriteString(text[start:end])
		prev = end
	}
	if prev != len(text) || sb.String() != text {
		t.Fatalf("segments do not tile the text: end=%d, len=%d", prev, len(text))
	}
}

func TestSegmentsEmptyText(t *testing.T) {
	for range (Segmenter{}).Segments("") {
		t.Fatalf("expected no clusters for empty text")
	}
}

func TestSegmentsStopEarly(t *testing.T) {
	n := 0
	for range (Segmenter{}).Segments("abc") {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("n=%d, want 1", n)
	}
}
