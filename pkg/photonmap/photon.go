// Package photonmap holds the two-pass photon map used by the path tracer
// for caustics: photon deposition at diffuse surfaces, an axis-cycled
// median-split k-d tree build over photon positions, and radius-bounded
// range queries for indirect illumination gathering.
package photonmap

import "github.com/cwallin/lumentrace/pkg/core"

// Photon is a single deposited unit of light: a world position, the
// direction it was travelling when it arrived, and the energy it carried at
// deposition time.
type Photon struct {
	Position core.Vec3
	Incoming core.Vec3
	Energy   core.Colour
}

// kdNode is an explicit index-based k-d tree node built in place over the
// photon slice.
type kdNode struct {
	photon      Photon
	axis        int
	left, right int // index into nodes, or -1
}

// PhotonMap stores every photon in the nodes of a k-d tree built over
// photon positions, splitting on axis = depth mod 3 with a median-on-axis
// partition at each level.
type PhotonMap struct {
	nodes []kdNode
	root  int
}

// NewPhotonMap builds a k-d tree over photons. The tree is built once and
// read concurrently by every render worker thereafter.
func NewPhotonMap(photons []Photon) *PhotonMap {
	pm := &PhotonMap{nodes: make([]kdNode, len(photons)), root: -1}
	if len(photons) == 0 {
		return pm
	}

	indices := make([]int, len(photons))
	for i := range indices {
		indices[i] = i
	}
	pm.root = pm.build(photons, indices, 0)
	return pm
}

// build recursively partitions indices by median on axis = depth mod 3,
// allocating one kdNode per photon.
func (pm *PhotonMap) build(photons []Photon, indices []int, depth int) int {
	if len(indices) == 0 {
		return -1
	}

	axis := depth % 3
	medianSelect(photons, indices, axis)

	mid := len(indices) / 2
	nodeIdx := indices[mid]

	pm.nodes[nodeIdx] = kdNode{
		photon: photons[indices[mid]],
		axis:   axis,
		left:   pm.build(photons, indices[:mid], depth+1),
		right:  pm.build(photons, indices[mid+1:], depth+1),
	}
	return nodeIdx
}

// medianSelect partitions indices so the median-on-axis element sits at
// the middle index, via a simple quickselect (nth_element-style, O(n)
// average).
func medianSelect(photons []Photon, indices []int, axis int) {
	k := len(indices) / 2
	lo, hi := 0, len(indices)-1
	for lo < hi {
		pivot := photons[indices[hi]].Position.At(axis)
		store := lo
		for i := lo; i < hi; i++ {
			if photons[indices[i]].Position.At(axis) < pivot {
				indices[store], indices[i] = indices[i], indices[store]
				store++
			}
		}
		indices[store], indices[hi] = indices[hi], indices[store]

		switch {
		case store == k:
			lo, hi = store, store
		case store < k:
			lo = store + 1
		default:
			hi = store - 1
		}
	}
}

// RangeQuery returns every stored photon within radius r of q. It descends
// into the near child first by the sign of q[axis]-node[axis], and into
// the far child only when that axis gap could still contain a photon
// within r.
func (pm *PhotonMap) RangeQuery(q core.Vec3, r float32) []Photon {
	var results []Photon
	if pm.root == -1 {
		return results
	}
	pm.rangeQuery(pm.root, q, r, &results)
	return results
}

func (pm *PhotonMap) rangeQuery(idx int, q core.Vec3, r float32, results *[]Photon) {
	if idx == -1 {
		return
	}
	node := &pm.nodes[idx]

	if node.photon.Position.Sub(q).Length() <= r {
		*results = append(*results, node.photon)
	}

	diff := q.At(node.axis) - node.photon.Position.At(node.axis)

	near, far := node.left, node.right
	if diff > 0 {
		near, far = node.right, node.left
	}

	pm.rangeQuery(near, q, r, results)
	if diff*diff <= r*r {
		pm.rangeQuery(far, q, r, results)
	}
}

// Len returns the number of photons stored in the map.
func (pm *PhotonMap) Len() int { return len(pm.nodes) }
