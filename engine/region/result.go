package region

import (
	"github.com/memmaker/meshify/engine/mask"
)

// Result is one decomposition run together with the counters shown to the user.
type Result struct {
	Regions []*Region
	// PixelCount is the number of opaque cells before the sweep.
	PixelCount int
	// Remaining is the number of opaque cells left in the working mask.
	Remaining int
}

func (r Result) TriangleCount() int {
	return 2 * len(r.Regions)
}

// Analyze decomposes a working copy of source and leaves source untouched,
// so the same mask can be analyzed again.
func (d *Decomposer) Analyze(source *mask.Mask) Result {
	working := source.Clone()
	pixelCount := working.OpaqueCount()
	regions := d.Decompose(working)
	return Result{
		Regions:    regions,
		PixelCount: pixelCount,
		Remaining:  working.OpaqueCount(),
	}
}
