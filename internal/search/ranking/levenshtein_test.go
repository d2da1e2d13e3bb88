package ranking

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"casa", "caza", 1},
		{"tusa", "tusa", 0},
		{"música", "musica", 1},
	}

	for _, tt := range tests {
		got := Levenshtein(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalizedDistance(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want float64
	}{
		{"", "", 0},
		{"tusa", "tusa", 0},
		{"abc", "xyz", 1},
		{"abcd", "", 1},
	}

	for _, tt := range tests {
		got := NormalizedDistance(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("NormalizedDistance(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
		}
	}

	// Sempre dentro de [0, 1].
	if d := NormalizedDistance("believer", "beliber remix"); d < 0 || d > 1 {
		t.Errorf("NormalizedDistance fora de [0,1]: %f", d)
	}
}
