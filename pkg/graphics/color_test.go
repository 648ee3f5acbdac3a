package graphics

import "testing"

func TestColorConstructors(t *testing.T) {
	if got := RGB(255, 0, 0); got != ColorRed {
		t.Errorf("RGB(255,0,0) = %#x, want %#x", uint32(got), uint32(ColorRed))
	}
	if got := RGBA8(0, 0, 255, 0x80); got != Color(0x800000FF) {
		t.Errorf("RGBA8 = %#x, want 0x800000FF", uint32(got))
	}
	if got := RGBA(0, 255, 0, 1.0); got != ColorGreen {
		t.Errorf("RGBA full alpha = %#x, want %#x", uint32(got), uint32(ColorGreen))
	}
}

func TestColorComponents(t *testing.T) {
	c := RGBA8(10, 20, 30, 40)
	r, g, b, a := c.RGBA8Components()
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("RGBA8Components = %d,%d,%d,%d", r, g, b, a)
	}
}

func TestWithAlpha(t *testing.T) {
	c := ColorRed.WithAlpha(0)
	if c.Alpha() != 0 {
		t.Errorf("WithAlpha(0).Alpha() = %v", c.Alpha())
	}
	if uint32(c)&0x00FFFFFF != 0x00FF0000 {
		t.Errorf("WithAlpha changed the color channels: %#x", uint32(c))
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#FF7F50", want: RGB(0xFF, 0x7F, 0x50)},
		{in: "#80FF7F50", want: RGBA8(0xFF, 0x7F, 0x50, 0x80)},
		{in: "coral", want: RGB(0xFF, 0x7F, 0x50)},
		{in: "MidnightBlue", want: RGB(25, 25, 112)},
		{in: " white ", want: ColorWhite},
		{in: "", wantErr: true},
		{in: "#FF", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
		{in: "notacolor", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q): expected error, got %#x", tt.in, uint32(got))
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %#x, want %#x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}
