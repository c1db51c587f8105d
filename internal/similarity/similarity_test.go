package similarity

import (
	"math"
	"testing"
)

// TestScore_Dispatch verifies the algorithm selection rule: Levenshtein when
// either string is under ten characters, Jaccard otherwise.
func TestScore_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			// Both short: Levenshtein. "cat" vs "cart" is distance 1 over max
			// length 4.
			name: "both short uses levenshtein",
			a:    "cat",
			b:    "cart",
			want: 0.75,
		},
		{
			// One short operand forces Levenshtein even though the other is
			// long. Token overlap would score these near zero.
			name: "one short operand uses levenshtein",
			a:    "bin",
			b:    "where is the nearest recycling bin",
			want: Levenshtein("bin", "where is the nearest recycling bin"),
		},
		{
			// Both long: Jaccard over word tokens. Three shared tokens out of
			// four total.
			name: "both long uses jaccard",
			a:    "recycle plastic bottles",
			b:    "recycle glass plastic bottles",
			want: 0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScore_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "short", "a much longer query about recycling"} {
		if got := Score(s, s); got != 1.0 {
			t.Errorf("Score(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestScore_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"hello", "help"},
		{"recycle plastic bottles", "how do i recycle plastic"},
		{"", "nonempty"},
		{"short", "a considerably longer string here"},
	}
	for _, p := range pairs {
		ab := Score(p[0], p[1])
		ba := Score(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Score not symmetric for (%q, %q): %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestScore_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"", "anything"},
		{"abc", "xyz"},
		{"completely different words here", "nothing shared at all between"},
		{"identical long strings match fully", "identical long strings match fully"},
	}
	for _, p := range pairs {
		got := Score(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Score(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"", "abc", 0.0},
		{"abc", "abc", 1.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
		{"hello", "hallo", 0.8},
	}
	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Levenshtein(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"", "some words", 0.0},
		{"a b c", "a b c", 1.0},
		{"a b c d", "a b", 0.5},
		{"one two three", "four five six", 0.0},
		// Punctuation does not split otherwise identical queries
		{"how do i recycle plastic bottles", "how do i recycle plastic bottles?", 1.0},
	}
	for _, tt := range tests {
		if got := Jaccard(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Jaccard(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestScore_EmptyQueryDoesNotPanic covers the malformed-input contract: empty
// against non-empty must degrade to a low score, never crash.
func TestScore_EmptyQueryDoesNotPanic(t *testing.T) {
	if got := Score("", "how do i recycle plastic bottles"); got >= 0.5 {
		t.Errorf("empty query scored %v, want a low score", got)
	}
}
