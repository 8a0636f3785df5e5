package misc

import (
	"image/color"
	"testing"
)

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{0, 0, 0, 255}},
		{"white", color.NRGBA{255, 255, 255, 255}},
		{"#ff000080", color.NRGBA{255, 0, 0, 128}},
	}

	for _, tt := range tests {
		got, err := ParseColorString(tt.in)
		if err != nil {
			t.Fatalf("ParseColorString(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColorString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorStringInvalid(t *testing.T) {
	if _, err := ParseColorString("not a color"); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestColorToString(t *testing.T) {
	got := ColorToString(color.NRGBA{0x10, 0x20, 0x30, 0xff})
	if got != "#102030FF" {
		t.Errorf("got %s", got)
	}
}
