package ai

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Rewritten summary.", "Rewritten summary."},
		{"fenced", "```\nRewritten summary.\n```", "Rewritten summary."},
		{"fenced with lang", "```text\nRewritten summary.\n```", "Rewritten summary."},
		{"quoted", `"Rewritten summary."`, "Rewritten summary."},
		{"surrounding whitespace", "  Rewritten summary.\n\n", "Rewritten summary."},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.in); got != tc.want {
				t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	p, err := buildPrompt(TypeSummary, "Backend Engineer", "I write code.")
	if err != nil {
		t.Fatal(err)
	}
	for _, frag := range []string{"Backend Engineer", "40 and 60 words", "I write code."} {
		if !strings.Contains(p, frag) {
			t.Errorf("summary prompt missing %q", frag)
		}
	}

	p, err = buildPrompt(TypeExperience, "", "Did stuff.")
	if err != nil {
		t.Fatal(err)
	}
	for _, frag := range []string{"STAR", "semicolons", "professional"} {
		if !strings.Contains(p, frag) {
			t.Errorf("experience prompt missing %q", frag)
		}
	}

	if _, err := buildPrompt("cover-letter", "", "x"); err == nil {
		t.Error("unknown type should fail")
	}
}

func TestCacheKeyStable(t *testing.T) {
	a := cacheKey(TypeSummary, "Engineer", "text")
	b := cacheKey(TypeSummary, "Engineer", "text")
	c := cacheKey(TypeExperience, "Engineer", "text")
	if a != b {
		t.Error("same input should yield same key")
	}
	if a == c {
		t.Error("different type should yield different key")
	}
	if !strings.HasPrefix(a, "ai:optimize:") {
		t.Errorf("key = %q", a)
	}
}
