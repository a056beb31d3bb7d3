package main

import "testing"

func TestResolveBrightness(t *testing.T) {
	tests := []struct {
		name    string
		flagVal int
		def     int
		want    int
	}{
		{"unset keeps default", -1, 100, 100},
		{"zero is a real value", 0, 100, 0},
		{"explicit value wins", 150, 100, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveBrightness(tt.flagVal, tt.def); got != tt.want {
				t.Fatalf("resolveBrightness(%d, %d) = %d, want %d",
					tt.flagVal, tt.def, got, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("16x32")
	if err != nil {
		t.Fatal(err)
	}
	if w != 16 || h != 32 {
		t.Fatalf("parseSize(16x32) = %dx%d", w, h)
	}

	for _, bad := range []string{"16", "x16", "16x", "0x16", "16x-1", "axb"} {
		if _, _, err := parseSize(bad); err == nil {
			t.Fatalf("parseSize(%q) accepted", bad)
		}
	}
}
