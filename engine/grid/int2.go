package grid

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Int2 is a cell coordinate on a mask. Y grows downward.
type Int2 struct {
	X, Y int
}

func (i Int2) Add(other Int2) Int2 {
	return Int2{i.X + other.X, i.Y + other.Y}
}

func (i Int2) Sub(other Int2) Int2 {
	return Int2{i.X - other.X, i.Y - other.Y}
}

func (i Int2) Mul(factor int) Int2 {
	i.X *= factor
	i.Y *= factor
	return i
}

func (i Int2) ToVec2() mgl32.Vec2 {
	return mgl32.Vec2{float32(i.X), float32(i.Y)}
}

// ToVec3 embeds the cell in 3D space with a zero Z component.
func (i Int2) ToVec3() mgl32.Vec3 {
	return i.ToVec2().Vec3(0)
}

func (i Int2) String() string {
	return fmt.Sprintf("(%d,%d)", i.X, i.Y)
}
