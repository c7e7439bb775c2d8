package domain

import (
	"reflect"
	"testing"
)

func TestSplitBullets(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"semicolons", "Led team; Shipped v2; Cut costs", []string{"Led team", "Shipped v2", "Cut costs"}},
		{"newlines", "Led team\nShipped v2", []string{"Led team", "Shipped v2"}},
		{"mixed", "Led team;\nShipped v2", []string{"Led team", "Shipped v2"}},
		{"trims whitespace", "  Led team ;  Shipped v2  ", []string{"Led team", "Shipped v2"}},
		{"drops empties", "Led team;;; ;Shipped v2;", []string{"Led team", "Shipped v2"}},
		{"empty input", "", nil},
		{"only separators", "; ;\n;", nil},
		{"single item", "Led team", []string{"Led team"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitBullets(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitBullets(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	items := []string{"Go", "PostgreSQL", "Redis"}
	joined := JoinTokens(items)
	if got := SplitTokens(joined); !reflect.DeepEqual(got, items) {
		t.Fatalf("round trip = %v, want %v", got, items)
	}
}

func TestDedupTokens(t *testing.T) {
	in := []string{"Go", "Redis", "Go", "PostgreSQL", "Redis"}
	want := []string{"Go", "Redis", "PostgreSQL"}
	if got := DedupTokens(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("DedupTokens = %v, want %v", got, want)
	}
}

func TestExperienceBullets(t *testing.T) {
	e := Experience{Description: "Built API; Mentored juniors"}
	if got := e.Bullets(); len(got) != 2 || got[1] != "Mentored juniors" {
		t.Fatalf("Bullets = %v", got)
	}
}

func TestValidProficiency(t *testing.T) {
	for _, p := range []string{ProficiencyNative, ProficiencyFluent, ProficiencyIntermediate, ProficiencyBasic} {
		if !ValidProficiency(p) {
			t.Errorf("ValidProficiency(%q) = false", p)
		}
	}
	for _, p := range []string{"", "native", "Expert"} {
		if ValidProficiency(p) {
			t.Errorf("ValidProficiency(%q) = true", p)
		}
	}
}
