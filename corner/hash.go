package corner

import "github.com/vybium/cubecorners/cube"

// factorial[n] = n!, factorial[0]=1, used as the place-value weights of the
// Lehmer code's mixed-radix digits.
var factorial = [8]int{1, 1, 2, 6, 24, 120, 720, 5040}

// pow3[n] = 3^n, used as the place-value weights of the orientation digits.
var pow3 = [8]int{1, 3, 9, 27, 81, 243, 729, 2187}

// Hash maps a cube state to its index in [0, TotalEntries), the perfect
// hash described in the spec's mixed-radix encoding: a 7-digit Lehmer code
// over the corner permutation (weighted by 3^7 so it occupies the most
// significant digits) followed by 7 base-3 orientation digits. The eighth
// permutation digit and eighth orientation digit are both determined by
// elimination and never read.
func Hash(s cube.State) (int, error) {
	var slot [8]int
	for i := range slot {
		slot[i] = i
	}

	index := 0
	for k := 0; k < 7; k++ {
		id, _ := cube.CUBIE(&s, cube.CornerPositions[k])
		c := cube.CornerIndex(int(id))
		if c < 0 || c > 7 {
			return 0, &FaultError{Kind: FaultBadCubieIdentity, Context: "corner cubie identity outside CornerPositions"}
		}
		d := slot[c]
		for j := c + 1; j < 8; j++ {
			slot[j]--
		}
		// weight (7-k)! * 3^7, i.e. factorial[7-k], in the
		// mixed-radix system with bases 8,7,6,5,4,3,2 from k=0..6.
		index += d * factorial[7-k] * pow3[7]
	}

	for k := 0; k < 7; k++ {
		_, o := cube.CUBIE(&s, cube.CornerPositions[k])
		if o > 2 {
			return 0, &FaultError{Kind: FaultNibbleOutOfRange, Context: "corner orientation outside 0..2"}
		}
		index += int(o) * pow3[6-k]
	}

	if index < 0 || index >= TotalEntries {
		return 0, &FaultError{Kind: FaultHashOutOfRange, Context: "computed index outside [0, TotalEntries)"}
	}
	return index, nil
}
