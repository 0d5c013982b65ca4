package fallback

import (
	"testing"
)

func TestSearchIntervals(t *testing.T) {
	mappings := []CodepointMapping{
		{Start: 0x20, End: 0x7E, Family: 0},
		{Start: 0x80, End: 0x80, Family: 2},
		{Start: 0x3000, End: 0x30FF, Family: 1},
	}
	tests := []struct {
		cp     rune
		family FamilyIndex
		found  bool
	}{
		{0x1F, NoFamily, false},
		{0x20, 0, true},
		{0x41, 0, true},
		{0x7E, 0, true},
		{0x7F, NoFamily, false},
		{0x80, 2, true},
		{0x81, NoFamily, false},
		{0x3000, 1, true},
		{0x30FF, 1, true},
		{0x3100, NoFamily, false},
		{0x10FFFF, NoFamily, false},
	}
	for _, tc := range tests {
		family, found := searchIntervals(mappings, tc.cp)
		if family != tc.family || found != tc.found {
			t.Errorf("search(%#x)=(%d,%v), want (%d,%v)", tc.cp, family, found, tc.family, tc.found)
		}
	}
	if _, found := searchIntervals(nil, 'a'); found {
		t.Errorf("expected search in empty index to fail")
	}
}

func TestEncodeIntervals(t *testing.T) {
	cps := []resolved{
		{'a', 0}, {'b', 0}, {'c', 1}, {'d', 1}, {'f', 1}, {'g', 0},
	}
	got := encodeIntervals(cps)
	want := []CodepointMapping{
		{Start: 'a', End: 'b', Family: 0},
		{Start: 'c', End: 'd', Family: 1},
		{Start: 'f', End: 'f', Family: 1},
		{Start: 'g', End: 'g', Family: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("intervals=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("interval[%d]=%v, want %v", i, got[i], want[i])
		}
	}
	if encodeIntervals(nil) != nil {
		t.Errorf("expected no intervals for no code-points")
	}
}

func TestCodepointSet(t *testing.T) {
	input := []rune{'c', 'a', 'b', 'a'}
	s := NewCodepointSet(input)
	if s.Len() != 3 {
		t.Fatalf("len=%d, want 3", s.Len())
	}
	if input[0] != 'c' {
		t.Fatalf("input slice has been modified")
	}
	if !s.Contains('b') || s.Contains('d') {
		t.Fatalf("unexpected membership in %v", s)
	}
	prev := rune(-1)
	for cp := range s.All() {
		if cp <= prev {
			t.Fatalf("code-points not ascending: %#U after %#U", cp, prev)
		}
		prev = cp
	}
}

func TestScoreTiers(t *testing.T) {
	f := NewFamily("Japanese", "ja", []rune{'あ', 0x3099})
	if s := score(&f, "ja", "あ"); s != scoreLangMatch {
		t.Errorf("score=%d, want language match", s)
	}
	if s := score(&f, "ko", "あ"); s != scoreSupported {
		t.Errorf("score=%d, want plain support", s)
	}
	if s := score(&f, "ja", "あa"); s != scoreReject {
		t.Errorf("score=%d, want reject", s)
	}
	if s := score(&f, "ja", "あ\uFE0F"); s != scoreLangMatch {
		t.Errorf("score=%d, want VS16 to be ignored", s)
	}
	untagged := NewFamily("Latin", "", []rune{'a'})
	if s := score(&untagged, "", "a"); s != scoreSupported {
		t.Errorf("score=%d, want plain support for family without language", s)
	}
}
