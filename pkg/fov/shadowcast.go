// Package fov implements recursive shadowcasting over a rectangular grid.
//
// The calculator knows nothing about tiles: it is parameterized by a
// light-blocking predicate, so one instance can be built per dungeon level.
package fov

// LightBlocker reports whether the cell at (x, y) stops light.
type LightBlocker func(x, y int) bool

// Calculator computes visible cells for one plane.
type Calculator struct {
	width, height int
	blocks        LightBlocker
}

// New returns a calculator for a width × height plane.
func New(width, height int, blocks LightBlocker) *Calculator {
	return &Calculator{width: width, height: height, blocks: blocks}
}

// Multipliers that map the first octant onto all eight.
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// Compute calls visit once for every in-bounds cell visible from (ox, oy)
// within radius (Euclidean, inclusive). The origin is always visible; a
// radius of zero or less yields the origin only.
func (c *Calculator) Compute(ox, oy, radius int, visit func(x, y int)) {
	if !c.inBounds(ox, oy) {
		return
	}

	seen := make(map[int]struct{})
	emit := func(x, y int) {
		idx := y*c.width + x
		if _, ok := seen[idx]; ok {
			return
		}
		seen[idx] = struct{}{}
		visit(x, y)
	}

	emit(ox, oy)
	if radius <= 0 {
		return
	}

	for i := 0; i < 8; i++ {
		c.castLight(ox, oy, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], emit)
	}
}

// Visible is Compute collected into a set keyed by y*width+x.
func (c *Calculator) Visible(ox, oy, radius int) map[int]bool {
	out := make(map[int]bool)
	c.Compute(ox, oy, radius, func(x, y int) {
		out[y*c.width+x] = true
	})
	return out
}

func (c *Calculator) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, emit func(x, y int)) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Octant coordinates to map coordinates
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			if c.inBounds(X, Y) && dx*dx+dy*dy <= radiusSq {
				emit(X, Y)
			}

			if blocked {
				// Walking along a wall
				if c.isBlocking(X, Y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if c.isBlocking(X, Y) && j < radius {
				// Hit a wall: scan the next row inside the lit part
				blocked = true
				c.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, emit)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

func (c *Calculator) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// isBlocking treats everything outside the plane as opaque.
func (c *Calculator) isBlocking(x, y int) bool {
	if !c.inBounds(x, y) {
		return true
	}
	return c.blocks(x, y)
}
