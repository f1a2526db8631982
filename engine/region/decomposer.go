package region

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/meshify/engine/grid"
	"github.com/memmaker/meshify/engine/mask"
	"github.com/memmaker/meshify/engine/util"
	"github.com/pkg/errors"
)

// ColorSource yields the presentation color of the next region.
type ColorSource func() mgl32.Vec4

// RandomColors samples each RGB channel uniformly from rng, alpha is always 1.
func RandomColors(rng *rand.Rand) ColorSource {
	return func() mgl32.Vec4 {
		return mgl32.Vec4{rng.Float32(), rng.Float32(), rng.Float32(), 1}
	}
}

// Decomposer partitions masks into rectangles with a single greedy sweep.
// It is not safe for concurrent use when its ColorSource is not.
type Decomposer struct {
	colors ColorSource
}

func NewDecomposer(colors ColorSource) *Decomposer {
	if colors == nil {
		colors = RandomColors(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return &Decomposer{colors: colors}
}

// Decompose runs a Decomposer with time seeded random colors.
func Decompose(m *mask.Mask) []*Region {
	return NewDecomposer(nil).Decompose(m)
}

// Decompose consumes m and returns the regions in discovery order.
//
// Seeds are visited column by column, top to bottom. A seed fixes the
// vertical run below it; the region then grows to the right for as long as
// the next column is opaque over exactly that span. Every consumed cell is
// cleared in m.
func (d *Decomposer) Decompose(m *mask.Mask) []*Region {
	var regions []*Region
	for x := 0; x < m.Width(); x++ {
		for y := 0; y < m.Height(); y++ {
			if !m.IsOpaque(x, y) {
				continue
			}
			seed := grid.Int2{X: x, Y: y}
			run := VerticalRun(m, x, y)
			cells := growRegion(m, seed, run)
			region, err := NewRegion(cells, d.colors())
			if err != nil {
				util.LogRegionError(fmt.Sprintf("[Decompose] seed %v produced no cells", seed))
				panic(errors.Wrapf(err, "seed %v", seed))
			}
			util.LogRegionDebug(fmt.Sprintf("[Decompose] %v", region))
			regions = append(regions, region)
		}
	}
	util.LogRegionInfo(fmt.Sprintf("[Decompose] %dx%d mask -> %d regions", m.Width(), m.Height(), len(regions)))
	return regions
}

// VerticalRun counts the consecutive opaque cells from (x, y) downward.
func VerticalRun(m *mask.Mask, x, y int) int {
	run := 0
	for y+run < m.Height() && m.IsOpaque(x, y+run) {
		run++
	}
	return run
}

// growRegion accepts columns left to right starting at the seed column. The
// span start and length stay fixed at the seed's values.
func growRegion(m *mask.Mask, seed grid.Int2, run int) []grid.Int2 {
	cells := make([]grid.Int2, 0, run)
	for x := seed.X; x < m.Width(); x++ {
		if !columnMatches(m, x, seed.Y, run) {
			break
		}
		for i := 0; i < run; i++ {
			m.Clear(x, seed.Y+i)
			cells = append(cells, grid.Int2{X: x, Y: seed.Y + i})
		}
	}
	return cells
}

func columnMatches(m *mask.Mask, x, startY, run int) bool {
	for i := 0; i < run; i++ {
		if startY+i >= m.Height() || !m.IsOpaque(x, startY+i) {
			return false
		}
	}
	return true
}
