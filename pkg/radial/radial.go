// Package radial places an ordered sequence of items evenly on a circle and
// expresses each position as offsets from two container edges, so a client
// can keep the layout responsive without one absolute coordinate system.
package radial

import "math"

// Anchor edges of the container.
const (
	Top    = "top"
	Bottom = "bottom"
	Left   = "left"
	Right  = "right"
)

// radiusPercent is the wheel radius as a fraction of the container.
const radiusPercent = 42.0

// Position anchors an item using one vertical and one horizontal edge, each
// with a percentage offset from that edge.
type Position struct {
	VAnchor string  // Top or Bottom
	VOffset float64 // percent from the vertical anchor edge
	HAnchor string  // Left or Right
	HOffset float64 // percent from the horizontal anchor edge
}

// Layout places n items on the circle. Item i sits at angle i*(360/n)
// degrees; the point is classified by quadrant relative to the center to
// pick its two anchor edges. Points on an axis anchor top/left. n <= 0
// yields no positions.
func Layout(n int) []Position {
	if n <= 0 {
		return nil
	}

	positions := make([]Position, n)
	step := 360.0 / float64(n)

	for i := 0; i < n; i++ {
		angle := float64(i) * step * (math.Pi / 180)
		x := 50 + radiusPercent*math.Cos(angle)
		y := 50 + radiusPercent*math.Sin(angle)

		switch {
		case x > 50 && y < 50:
			positions[i] = Position{VAnchor: Top, VOffset: y, HAnchor: Right, HOffset: 100 - x}
		case x > 50 && y > 50:
			positions[i] = Position{VAnchor: Bottom, VOffset: 100 - y, HAnchor: Right, HOffset: 100 - x}
		case x < 50 && y > 50:
			positions[i] = Position{VAnchor: Bottom, VOffset: 100 - y, HAnchor: Left, HOffset: x}
		default:
			positions[i] = Position{VAnchor: Top, VOffset: y, HAnchor: Left, HOffset: x}
		}
	}
	return positions
}
