package cube

// coord3 places a cubie position in {-1,0,1}^3. Corners have all three
// components non-zero; edges have exactly one zero component. This gives a
// uniform way to generate the 18 face-turn permutations algebraically
// instead of hand-writing 18 cycle tables.
type coord3 struct{ x, y, z int }

// axis identifies which coordinate a face turn rotates around.
type axis int

const (
	axisX axis = iota // L/R
	axisY             // U/D
	axisZ             // F/B
)

func (c coord3) component(a axis) int {
	switch a {
	case axisX:
		return c.x
	case axisY:
		return c.y
	default:
		return c.z
	}
}

func withComponent(c coord3, a axis, v int) coord3 {
	switch a {
	case axisX:
		c.x = v
	case axisY:
		c.y = v
	default:
		c.z = v
	}
	return c
}

// otherTwo returns the two components not on axis a, in a fixed order.
func otherTwo(c coord3, a axis) (int, int) {
	switch a {
	case axisX:
		return c.y, c.z
	case axisY:
		return c.x, c.z
	default:
		return c.x, c.y
	}
}

func withOtherTwo(c coord3, a axis, u, v int) coord3 {
	switch a {
	case axisX:
		c.y, c.z = u, v
	case axisY:
		c.x, c.z = u, v
	default:
		c.x, c.y = u, v
	}
	return c
}

// rotate90 turns the plane perpendicular to a by one quarter turn. It is a
// genuine order-4 permutation of the plane for any (u,v) with at least one
// non-zero component, which both corner and edge coordinates satisfy.
func rotate90(c coord3, a axis) coord3 {
	u, v := otherTwo(c, a)
	return withOtherTwo(c, a, v, -u)
}

// position<->coordinate tables, built once at init from CornerPositions plus
// a canonical enumeration of the 12 edge coordinates.
var (
	positionCoord [CubieLen]coord3
	coordPosition = map[coord3]int{}
)

func init() {
	corners := make([]coord3, 0, 8)
	for bx := -1; bx <= 1; bx += 2 {
		for by := -1; by <= 1; by += 2 {
			for bz := -1; bz <= 1; bz += 2 {
				corners = append(corners, coord3{bx, by, bz})
			}
		}
	}
	for k, p := range CornerPositions {
		positionCoord[p] = corners[k]
		coordPosition[corners[k]] = p
	}

	edges := make([]coord3, 0, 12)
	for _, zeroAxis := range []axis{axisX, axisY, axisZ} {
		for u := -1; u <= 1; u += 2 {
			for v := -1; v <= 1; v += 2 {
				edges = append(edges, withOtherTwo(coord3{}, zeroAxis, u, v))
			}
		}
	}
	edgeSlots := make([]int, 0, 12)
	for p := 0; p < CubieLen; p++ {
		if !IsCorner(p) {
			edgeSlots = append(edgeSlots, p)
		}
	}
	for k, p := range edgeSlots {
		positionCoord[p] = edges[k]
		coordPosition[edges[k]] = p
	}
}
