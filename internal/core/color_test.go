package core

import "testing"

func TestColorLerp(t *testing.T) {
	r, g, b, a := Lerp(ColorRayWhite, ColorGray, 0)
	wr, wg, wb, wa := ColorRayWhite.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("Lerp(t=0) = %d,%d,%d,%d, expected first color", r, g, b, a)
	}

	r, g, b, _ = Lerp(ColorRayWhite, ColorGray, 1)
	gr, gg, gb, _ := ColorGray.RGBA()
	if r != gr || g != gg || b != gb {
		t.Errorf("Lerp(t=1) = %d,%d,%d, expected second color", r, g, b)
	}

	// Out of range t is clamped
	r2, _, _, _ := Lerp(ColorRayWhite, ColorGray, 5)
	if r2 != gr {
		t.Errorf("Lerp(t=5) should clamp to second color, got r=%d", r2)
	}
}

func TestColorANSI(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Error("default color should have no ANSI code")
	}
	for _, c := range []Color{ColorRayWhite, ColorDarkBlue, ColorBlue, ColorGray, ColorWhite} {
		if c.ANSI() == "" {
			t.Errorf("color %d should have an ANSI code", c)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
