package core

import "testing"

func almostEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec3
		length float32
	}{
		{"unit x", NewVec3(1, 0, 0), 1},
		{"arbitrary", NewVec3(3, 4, 0), 1},
		{"zero vector does not error", NewVec3(0, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize().Length()
			if !almostEqual(got, tt.length, 1e-6) {
				t.Errorf("Normalize().Length() = %v, want %v", got, tt.length)
			}
		})
	}
}

func TestVec3_DotCross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Dot(y); got != 0 {
		t.Errorf("orthogonal dot = %v, want 0", got)
	}
	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("x cross y = %v, want (0,0,1)", got)
	}
}

func TestRay_Invariants(t *testing.T) {
	r := NewRay(NewVec3(1, 2, 3), NewVec3(2, 0, 0))

	if r.At(0) != r.Origin {
		t.Errorf("ray.At(0) = %v, want origin %v", r.At(0), r.Origin)
	}
	if got := r.Direction.Length(); !almostEqual(got, 1, 1e-6) {
		t.Errorf("ray direction length = %v, want 1", got)
	}
}

func TestColour_BelowThreshold(t *testing.T) {
	if !NewColour(0.1, 0.1, 0.1).BelowThreshold() {
		t.Error("expected (0.1,0.1,0.1) to be below threshold")
	}
	if NewColour(0.2, 0, 0).BelowThreshold() {
		t.Error("expected (0.2,0,0) to be above threshold")
	}
}

func TestColour_Clamp(t *testing.T) {
	c := NewColour(-10, 128, 400).Clamp()
	if c.R != 0 || c.G != 128 || c.B != 255 {
		t.Errorf("Clamp() = %+v, want {0,128,255}", c)
	}
}
