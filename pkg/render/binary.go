package render

import (
	"github.com/cwallin/lumentrace/pkg/core"
	"github.com/cwallin/lumentrace/pkg/scene"
)

// traceBinary is the correctness smoke test: pure red on any hit, the
// scene's background colour otherwise, with no shading at all.
func traceBinary(s *scene.Scene, ray core.Ray) core.Colour {
	hit := s.Intersect(ray)
	if hit.Hit {
		return core.NewColour(255, 0, 0)
	}
	return s.Background
}
