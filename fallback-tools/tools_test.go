package main

import (
	"testing"
)

func TestParseCodepoints(t *testing.T) {
	runes, err := parseCodepoints("U+0041, 0x3042 1F600")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(runes) != "Aあ\U0001F600" {
		t.Fatalf("runes=%q, want %q", string(runes), "Aあ\U0001F600")
	}
	for _, bad := range []string{"U+XYZ", "D800", "110000"} {
		if _, err := parseCodepoints(bad); err == nil {
			t.Fatalf("expected error for codepoint %q", bad)
		}
	}
}

func TestCanonicalLanguage(t *testing.T) {
	tests := []struct{ in, out string }{
		{"", ""},
		{"-", ""},
		{"JA", "ja"},
		{"zh_hans", "zh-Hans"},
		{" ko ", "ko"},
		{"und-ethi", "und-Ethi"},
	}
	for _, tc := range tests {
		got, err := canonicalLanguage(tc.in)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.in, err)
		}
		if got != tc.out {
			t.Fatalf("language=%q, want %q", got, tc.out)
		}
	}
	if _, err := canonicalLanguage("not a tag"); err == nil {
		t.Fatalf("expected error for malformed tag")
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		op   Op
		arg  string
	}{
		{"Hello 世界", ITEMIZE, "Hello 世界"},
		{" leading space", ITEMIZE, " leading space"},
		{":quit", QUIT, ""},
		{":LANG zh_hant", LANG, "zh-Hant"},
		{":lang", LANG, ""},
		{":graphemes abc", GRAPHEMES, "abc"},
		{":chain", CHAIN, ""},
	}
	for _, tc := range tests {
		cmd, err := parseCommand(tc.line)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.line, err)
		}
		if cmd.op != tc.op || cmd.arg != tc.arg {
			t.Fatalf("command for %q = (%d, %q), want (%d, %q)", tc.line, cmd.op, cmd.arg, tc.op, tc.arg)
		}
	}
	for _, bad := range []string{":frobnicate", ":graphemes", ":lang !!"} {
		if _, err := parseCommand(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
