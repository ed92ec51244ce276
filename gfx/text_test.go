package gfx

import "testing"

func TestEllipsize(t *testing.T) {
	style := TextStyle{CharWidth: 10}

	cases := []struct {
		maxWidth int16
		text     string
		want     string
	}{
		{100, "short", "short"},
		{100, "exactly ten", "exactly..."},
		{100, "a much longer string", "a much ..."},
		{20, "overconstrained", "o..."},
		{100, "1234567890", "1234567890"}, // exact fit stays whole
	}
	for _, tc := range cases {
		if got := Ellipsize(tc.maxWidth, tc.text, style); got != tc.want {
			t.Fatalf("Ellipsize(%d, %q) = %q, want %q", tc.maxWidth, tc.text, got, tc.want)
		}
	}
}

func TestEllipsizeIdempotent(t *testing.T) {
	style := TextStyle{CharWidth: 10}

	once := Ellipsize(100, "a much longer string", style)
	twice := Ellipsize(100, once, style)
	if once != twice {
		t.Fatalf("Ellipsize not idempotent: %q then %q", once, twice)
	}
}

func TestEllipsizeZeroCharWidth(t *testing.T) {
	style := TextStyle{}
	if got := Ellipsize(10, "anything", style); got != "anything" {
		t.Fatalf("Ellipsize with zero CharWidth = %q, want passthrough", got)
	}
}

func TestTextWidth(t *testing.T) {
	style := TextStyle{CharWidth: 7}
	if got := style.TextWidth("abcd"); got != 28 {
		t.Fatalf("TextWidth = %d, want 28", got)
	}
}
