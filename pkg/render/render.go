package render

import (
	"runtime"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/cwallin/lumentrace/pkg/core"
	"github.com/cwallin/lumentrace/pkg/photonmap"
	"github.com/cwallin/lumentrace/pkg/scene"
	"github.com/cwallin/lumentrace/pkg/tonemap"
)

// Render traces the full image for s and returns its tone-mapped,
// row-major pixel buffer. seed derives every worker's RNG so renders are
// reproducible given the same seed.
func Render(s *scene.Scene, seed int64) []core.Colour {
	var pixels []core.Colour

	switch s.Mode {
	case scene.Binary:
		pixels = renderRows(s, seed, 1, func(scn *scene.Scene, _ *photonmap.PhotonMap, ray core.Ray, _ int, _ *core.RNG) core.Colour {
			return traceBinary(scn, ray)
		}, nil)
		tonemap.Linear{Exposure: s.Exposure}.Apply(pixels)

	case scene.Phong:
		pixels = renderRows(s, seed, 1, func(scn *scene.Scene, _ *photonmap.PhotonMap, ray core.Ray, _ int, _ *core.RNG) core.Colour {
			return tracePhong(scn, ray, 0)
		}, nil)
		tonemap.Linear{Exposure: s.Exposure}.Apply(pixels)

	case scene.Path:
		pm := BuildPhotonMap(s, core.NewRNG(seed))
		glog.Infof("photon map built: %d photons deposited", pm.Len())
		pixels = renderRows(s, seed, s.SamplesPerPixel, func(scn *scene.Scene, photons *photonmap.PhotonMap, ray core.Ray, depth int, rng *core.RNG) core.Colour {
			return tracePath(scn, photons, ray, depth, rng)
		}, pm)
		tonemap.Linear{Exposure: s.Exposure}.Apply(pixels)
		tonemap.ACESFit{}.Apply(pixels)
	}

	return pixels
}

// shadeFunc traces a single primary ray to a colour. depth is always 0 for
// primary rays; it exists so Binary/Phong/Path share one dispatch shape.
type shadeFunc func(s *scene.Scene, pm *photonmap.PhotonMap, ray core.Ray, depth int, rng *core.RNG) core.Colour

// renderRows partitions the image into contiguous row bands, one per
// worker, and renders each band with its own independently seeded RNG.
// Workers read the immutable Scene, BVH and PhotonMap and write to
// disjoint row ranges of the returned buffer, so no synchronisation is
// required beyond the errgroup join.
func renderRows(s *scene.Scene, seed int64, samplesPerPixel int, shade shadeFunc, pm *photonmap.PhotonMap) []core.Colour {
	pixels := make([]core.Colour, s.Width*s.Height)

	numWorkers := runtime.NumCPU()
	if numWorkers > s.Height {
		numWorkers = s.Height
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	rowsPerWorker := (s.Height + numWorkers - 1) / numWorkers

	var eg errgroup.Group
	for w := 0; w < numWorkers; w++ {
		startY := w * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > s.Height {
			endY = s.Height
		}
		if startY >= endY {
			continue
		}

		eg.Go(func() error {
			renderRowBand(s, seed, startY, endY, samplesPerPixel, shade, pm, pixels)
			return nil
		})
	}
	_ = eg.Wait() // workers never return an error; retained for the errgroup idiom

	return pixels
}

func renderRowBand(s *scene.Scene, seed int64, startY, endY, samplesPerPixel int, shade shadeFunc, pm *photonmap.PhotonMap, pixels []core.Colour) {
	for y := startY; y < endY; y++ {
		rng := core.NewRNG(seed + int64(y))
		for x := 0; x < s.Width; x++ {
			var sum core.Colour
			for i := 0; i < samplesPerPixel; i++ {
				var jx, jy float32
				if samplesPerPixel > 1 {
					jx = rng.Float32Range(-0.5, 0.5)
					jy = rng.Float32Range(-0.5, 0.5)
				}
				ray := s.Camera.GenerateRay(float32(x)+jx, float32(y)+jy, rng)
				sum = sum.Add(shade(s, pm, ray, 0, rng))
			}
			pixels[y*s.Width+x] = sum.Div(float32(samplesPerPixel))
		}
	}
}
