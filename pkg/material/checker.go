package material

import (
	"math"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
)

// Checker is a position-dependent material alternating between two Phong
// responses in a 3D checkerboard pattern. It exists to exercise the contract
// that materials are evaluated after the interaction's geometric fields are
// populated.
type Checker struct {
	Odd, Even *Phong
	Scale     float64 // edge length of one checker cell
}

// NewChecker creates a checkerboard material with the given cell size
func NewChecker(odd, even *Phong, scale float64) *Checker {
	if scale <= 0 {
		scale = 1
	}
	return &Checker{Odd: odd, Even: even, Scale: scale}
}

// Evaluate picks one of the two responses based on the hit position
func (c *Checker) Evaluate(isect *core.Interaction) core.MaterialResponse {
	p := isect.Point.Multiply(1 / c.Scale)
	parity := int(math.Floor(p.X)) + int(math.Floor(p.Y)) + int(math.Floor(p.Z))
	if parity%2 != 0 {
		return c.Odd.Evaluate(isect)
	}
	return c.Even.Evaluate(isect)
}
