package photonmap

import (
	"math/rand"
	"testing"

	"github.com/cwallin/lumentrace/pkg/core"
)

func randomPhotons(n int, seed int64) []Photon {
	r := rand.New(rand.NewSource(seed))
	photons := make([]Photon, n)
	for i := range photons {
		photons[i] = Photon{
			Position: core.NewVec3(r.Float32()*10-5, r.Float32()*10-5, r.Float32()*10-5),
			Incoming: core.NewVec3(0, -1, 0),
			Energy:   core.NewColour(10, 10, 10),
		}
	}
	return photons
}

// bruteForceRange mirrors RangeQuery without the k-d tree, used as the
// reference for the completeness property.
func bruteForceRange(photons []Photon, q core.Vec3, r float32) map[core.Vec3]bool {
	set := make(map[core.Vec3]bool)
	for _, p := range photons {
		if p.Position.Sub(q).Length() <= r {
			set[p.Position] = true
		}
	}
	return set
}

func TestPhotonMap_RangeQueryCompleteness(t *testing.T) {
	photons := randomPhotons(500, 42)
	pm := NewPhotonMap(photons)

	q := core.NewVec3(0, 0, 0)
	r := float32(2.0)

	want := bruteForceRange(photons, q, r)
	got := pm.RangeQuery(q, r)

	if len(got) != len(want) {
		t.Fatalf("RangeQuery returned %d photons, want %d", len(got), len(want))
	}
	for _, p := range got {
		if !want[p.Position] {
			t.Errorf("RangeQuery returned a photon outside radius: %v", p.Position)
		}
		if p.Position.Sub(q).Length() > r {
			t.Errorf("photon %v is farther than r=%v from query point", p.Position, r)
		}
	}
}

func TestPhotonMap_StoredPhotonAlwaysFound(t *testing.T) {
	photons := randomPhotons(200, 7)
	pm := NewPhotonMap(photons)

	for _, p := range photons {
		got := pm.RangeQuery(p.Position, 0)
		found := false
		for _, g := range got {
			if g.Position == p.Position {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("photon at %v not found by a zero-radius query at its own position", p.Position)
		}
	}
}

func TestPhotonMap_Empty(t *testing.T) {
	pm := NewPhotonMap(nil)
	if got := pm.RangeQuery(core.NewVec3(0, 0, 0), 10); len(got) != 0 {
		t.Errorf("expected no results from an empty photon map, got %d", len(got))
	}
}
