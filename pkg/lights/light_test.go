package lights

import (
	"testing"

	"github.com/cwallin/lumentrace/pkg/core"
)

func TestPointLight_PDFAlwaysOne(t *testing.T) {
	l := NewPointLight(core.NewVec3(0, 5, 0), core.NewColour(255, 255, 255))
	if l.PDF() != 1 {
		t.Errorf("PointLight.PDF() = %v, want 1", l.PDF())
	}
	if l.SamplePoint(nil) != l.Pos {
		t.Errorf("SamplePoint() = %v, want fixed position %v", l.SamplePoint(nil), l.Pos)
	}
}

func TestAreaLight_PDFMatchesInverseArea(t *testing.T) {
	l := NewAreaLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), 2, 4, core.NewColour(255, 255, 255))
	want := float32(1.0 / 8.0)
	if got := l.PDF(); got != want {
		t.Errorf("PDF() = %v, want %v", got, want)
	}
}

func TestAreaLight_SamplePointWithinBounds(t *testing.T) {
	center := core.NewVec3(0, 5, 0)
	l := NewAreaLight(center, core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), 2, 2, core.NewColour(255, 255, 255))
	rng := core.NewRNG(1)

	for i := 0; i < 100; i++ {
		p := l.SamplePoint(rng)
		if p.X < -1 || p.X > 1 || p.Z < -1 || p.Z > 1 {
			t.Fatalf("sample %v outside light rectangle bounds", p)
		}
	}
}

func TestAreaLight_GetNormalOrthogonal(t *testing.T) {
	l := NewAreaLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), 1, 1, core.Black)
	n := l.GetNormal()
	if n.Y > -0.99 {
		t.Errorf("GetNormal() = %v, want ~(0,-1,0) = U x V", n)
	}
}
