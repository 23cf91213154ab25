package graphics

import "testing"

func TestRGBAPacking(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	if c != Color(0x78123456) {
		t.Errorf("RGBA = %#08x, want 0x78123456", uint32(c))
	}
	if got := RGB(0x12, 0x34, 0x56); got != Color(0xFF123456) {
		t.Errorf("RGB = %#08x, want 0xFF123456", uint32(got))
	}
}

func TestRGBAF(t *testing.T) {
	r, g, b, a := ColorWhite.RGBAF()
	if r != 1 || g != 1 || b != 1 || a != 1 {
		t.Errorf("white RGBAF = %v %v %v %v, want all 1", r, g, b, a)
	}
	r, g, b, a = ColorTransparent.RGBAF()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("transparent RGBAF = %v %v %v %v, want all 0", r, g, b, a)
	}
}

func TestWithAlpha(t *testing.T) {
	c := ColorRed.WithAlpha(0x80)
	if c != Color(0x80FF0000) {
		t.Errorf("WithAlpha = %#08x, want 0x80FF0000", uint32(c))
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		from, to Color
		t        float64
		want     Color
	}{
		{"t zero", ColorBlack, ColorWhite, 0, ColorBlack},
		{"t one", ColorBlack, ColorWhite, 1, ColorWhite},
		{"t clamped low", ColorBlack, ColorWhite, -0.5, ColorBlack},
		{"t clamped high", ColorBlack, ColorWhite, 1.5, ColorWhite},
		{"midpoint", ColorBlack, ColorWhite, 0.5, RGBA(0x80, 0x80, 0x80, 0xFF)},
		{"alpha channel", ColorTransparent, ColorBlack, 0.5, RGBA(0, 0, 0, 0x80)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Lerp(tt.to, tt.t); got != tt.want {
				t.Errorf("Lerp = %#08x, want %#08x", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestColorSVG(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"opaque black", ColorBlack, "#000000ff"},
		{"opaque white", ColorWhite, "#ffffffff"},
		{"transparent", ColorTransparent, "#00000000"},
		{"half red", ColorRed.WithAlpha(0x80), "#ff000080"},
		{"mixed", RGBA(0x12, 0x34, 0x56, 0x78), "#12345678"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.SVG(); got != tt.want {
				t.Errorf("SVG = %q, want %q", got, tt.want)
			}
		})
	}
}
