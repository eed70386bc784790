package core

import "testing"

func TestParseSizeBy(t *testing.T) {
	tests := []struct {
		in      string
		want    SizeBy
		wantErr bool
	}{
		{"", SizeByWidth, false},
		{"width", SizeByWidth, false},
		{"Height", SizeByHeight, false},
		{"native", SizeNative, false},
		{"diagonal", SizeNative, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSizeBy("sprite.size_by", tc.in)
			if tc.wantErr {
				if !IsConfigurationError(err) {
					t.Fatalf("ParseSizeBy(%q) should fail with a configuration error, got %v", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSizeBy(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseSizeBy(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFitSize(t *testing.T) {
	w, h, err := FitSize(200, 100, 50, SizeByWidth)
	if err != nil || w != 50 || h != 25 {
		t.Errorf("FitSize by width = %vx%v (%v), expected 50x25", w, h, err)
	}

	w, h, err = FitSize(200, 100, 50, SizeByHeight)
	if err != nil || w != 100 || h != 50 {
		t.Errorf("FitSize by height = %vx%v (%v), expected 100x50", w, h, err)
	}

	if _, _, err := FitSize(0, 100, 50, SizeByWidth); err == nil {
		t.Error("FitSize should reject an empty native size")
	}
}

func TestSpriteRectAt(t *testing.T) {
	s := Sprite{Name: "ship", W: 100, H: 50}
	r := s.RectAt(200, 100)

	if r.X != 150 || r.Y != 75 || r.W != 100 || r.H != 50 {
		t.Errorf("RectAt(200, 100) = %+v", r)
	}

	scaled := s.Scaled(10, 20)
	if scaled.Name != "ship" || scaled.W != 10 || scaled.H != 20 {
		t.Errorf("Scaled() = %+v", scaled)
	}
}
