package cube

import "sort"

// TurnCount is the number of face-turn identifiers (6 faces x 3 angles).
const TurnCount = 18

// Face identifies one of the six faces. The numeric order fixes which
// opposite pairs commute-prune in which direction (see Prune).
type Face int

const (
	FaceU Face = iota
	FaceD
	FaceL
	FaceR
	FaceF
	FaceB
)

var faceNames = [6]string{"U", "D", "L", "R", "F", "B"}

func (f Face) String() string { return faceNames[f] }

var faceAxis = [6]axis{axisY, axisY, axisX, axisX, axisZ, axisZ}
var faceSign = [6]int{+1, -1, -1, +1, +1, -1}

// TurnFace returns the face a turn identifier belongs to.
func TurnFace(turnID int) Face { return Face(turnID / 3) }

// TurnQuarter returns how many 90-degree steps a turn identifier applies:
// 1 (90), 2 (180) or 3 (270).
func TurnQuarter(turnID int) int { return turnID%3 + 1 }

// quarterPerm[f] / quarterTwist[f] describe one 90-degree clockwise turn of
// face f: new_state[newpos] = old_state[quarterPerm[f][newpos]], with
// corner orientation adjusted by +quarterTwist[f][newpos] (mod 3).
var (
	quarterPerm  [6][CubieLen]int
	quarterTwist [6][CubieLen]int
)

func init() {
	for f := 0; f < 6; f++ {
		a, sign := faceAxis[f], faceSign[f]
		// rotate90 is clockwise as seen from R, F and D; U, L and B need
		// three applications to turn clockwise as seen from that face.
		ccw := Face(f) == FaceU || Face(f) == FaceL || Face(f) == FaceB
		turn := func(c coord3) coord3 {
			c = rotate90(c, a)
			if ccw {
				c = rotate90(rotate90(c, a), a)
			}
			return c
		}
		var perm [CubieLen]int
		for p := 0; p < CubieLen; p++ {
			perm[p] = p
		}
		for p := 0; p < CubieLen; p++ {
			c := positionCoord[p]
			if c.component(a) != sign {
				continue
			}
			np := coordPosition[turn(c)]
			perm[np] = p
		}
		quarterPerm[f] = perm

		if a == axisY {
			continue // U/D never twist corners
		}
		var onFace []int
		for _, cp := range CornerPositions {
			if positionCoord[cp].component(a) == sign {
				onFace = append(onFace, cp)
			}
		}
		sort.Ints(onFace)
		cur := onFace[0]
		delta := 1
		for i := 0; i < 4; i++ {
			np := coordPosition[turn(positionCoord[cur])]
			quarterTwist[f][np] = delta
			delta = 3 - delta // alternates 1,2,1,2 -> sums to 0 mod 3
			cur = np
		}
	}
}

// Apply writes the result of applying turnID to *in into *out. out and in
// must not alias.
func Apply(out, in *State, turnID int) {
	f := int(TurnFace(turnID))
	times := TurnQuarter(turnID)
	cur := *in
	var next State
	for i := 0; i < times; i++ {
		perm := &quarterPerm[f]
		twist := &quarterTwist[f]
		for p := 0; p < CubieLen; p++ {
			src := cur[perm[p]]
			if twist[p] != 0 {
				src.Orientation = (src.Orientation + byte(twist[p])) % 3
			}
			next[p] = src
		}
		cur = next
	}
	*out = cur
}

// Prune reports whether applying `next` right after `last` is trivially
// redundant: a repeated turn on the same face, or the higher-numbered half
// of a commuting opposite-face pair following the lower-numbered half
// (e.g. D then U is kept, U then D is pruned).
func Prune(next, last int) bool {
	nf, lf := TurnFace(next), TurnFace(last)
	if nf == lf {
		return true
	}
	if opposite(nf, lf) && lf < nf {
		return true
	}
	return false
}

func opposite(a, b Face) bool {
	return a/2 == b/2 && a != b
}
