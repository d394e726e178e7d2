package corner

import "github.com/vybium/cubecorners/cube"

// MaxDepth is the known diameter of the corner subgroup under this turn
// model: every reachable configuration is found by depth 11.
const MaxDepth = 11

// distShift is added to a true distance before it is stored in a Table
// entry, so that nibble value 0 means strictly "unset" and never collides
// with a genuine distance of 0 (the recommended fix for the sentinel-zero
// ambiguity called out in the design notes).
const distShift = 1

// ProgressFunc receives a best-effort progress report; it is not part of
// the generator's contract and may be nil.
type ProgressFunc func(depth int, pops, filled int64)

// progressInterval is how often (in stack pops) a non-nil ProgressFunc is
// invoked: every 2^18 pops, per the spec's diagnostic side channel.
const progressInterval = 1 << 18

// Generate fills t with, for every reachable corner configuration, the
// minimum number of face turns from reference to reach it, via iterative
// deepening depth-first search. It returns once every entry has been
// filled, or a fatal error if MaxDepth is exceeded first (which would mean
// the turn model or hash is broken, not that the search needs to go
// deeper: the corner subgroup's diameter is a known constant).
//
// Progress is reported every 2^18 stack pops. Use GenerateWithInterval to
// override that cadence.
func Generate(t *Table, reference cube.State, progress ProgressFunc) error {
	return GenerateWithInterval(t, reference, progress, progressInterval)
}

// GenerateWithInterval is Generate with the progress-report cadence (in
// stack pops) overridden; interval <= 0 falls back to the default.
func GenerateWithInterval(t *Table, reference cube.State, progress ProgressFunc, interval int64) error {
	if interval <= 0 {
		interval = progressInterval
	}

	visited := NewVisited()
	var filled int64

	for depth := 0; depth <= MaxDepth; depth++ {
		visited.Clear()
		stack := newDFSStack()
		stack.push(frame{state: reference, last: lastNone, dist: 0})

		var pops int64
		for !stack.empty() {
			f := stack.pop()
			pops++
			if progress != nil && pops%interval == 0 {
				progress(depth, pops, filled)
			}

			if f.dist == depth {
				h, err := Hash(f.state)
				if err != nil {
					return err
				}
				if t.Get(h) == 0 {
					t.Set(h, uint8(depth+distShift))
					filled++
				}
				continue
			}

			for turnID := 0; turnID < cube.TurnCount; turnID++ {
				if f.last != lastNone && cube.Prune(turnID, f.last) {
					continue
				}
				var next cube.State
				cube.Apply(&next, &f.state, turnID)
				h, err := Hash(next)
				if err != nil {
					return err
				}
				nd := f.dist + 1
				if v := visited.Get(h); v != 0 && int(v) <= nd {
					continue
				}
				visited.Set(h, uint8(nd))
				stack.push(frame{state: next, last: turnID, dist: nd})
			}
		}

		if progress != nil {
			progress(depth, pops, filled)
		}
		if filled >= TotalEntries {
			return nil
		}
	}

	return &FaultError{Kind: FaultIndexOutOfRange, Context: "exhausted MaxDepth without filling the table"}
}

// Lookup returns the minimum number of turns from reference to state, as
// recorded by a prior Generate call against the same table.
func Lookup(t *Table, state cube.State) (int, error) {
	h, err := Hash(state)
	if err != nil {
		return 0, err
	}
	v := t.Get(h)
	if v == 0 {
		return 0, &FaultError{Kind: FaultNibbleOutOfRange, Context: "entry is unset"}
	}
	d := int(v) - distShift
	if d > MaxDepth {
		return 0, &FaultError{Kind: FaultNibbleOutOfRange, Context: "decoded distance exceeds MaxDepth"}
	}
	return d, nil
}
