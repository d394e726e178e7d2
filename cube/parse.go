package cube

import (
	"strings"

	"github.com/pkg/errors"
)

var faceByLetter = map[byte]Face{
	'U': FaceU, 'D': FaceD, 'L': FaceL, 'R': FaceR, 'F': FaceF, 'B': FaceB,
}

// ParseMoves parses a space-separated move string such as "U R2 F'" into
// turn identifiers. "'" suffixes a 270-degree (counter-clockwise) turn, "2"
// a 180-degree turn; a bare face letter is a 90-degree turn.
func ParseMoves(s string) ([]int, error) {
	fields := strings.Fields(s)
	moves := make([]int, 0, len(fields))
	for _, tok := range fields {
		if len(tok) == 0 {
			continue
		}
		face, ok := faceByLetter[tok[0]]
		if !ok {
			return nil, errors.Errorf("cube: unknown face letter %q in move %q", tok[0], tok)
		}
		quarter := 1
		if len(tok) > 1 {
			switch tok[1] {
			case '2':
				quarter = 2
			case '\'':
				quarter = 3
			default:
				return nil, errors.Errorf("cube: unrecognized move modifier in %q", tok)
			}
		}
		moves = append(moves, int(face)*3+(quarter-1))
	}
	return moves, nil
}

// Scramble applies a sequence of turn identifiers to the solved state and
// returns the result, ignoring Prune (a scramble is allowed to contain
// redundant moves).
func Scramble(moves []int) State {
	cur := Solved()
	var next State
	for _, m := range moves {
		Apply(&next, &cur, m)
		cur = next
	}
	return cur
}
