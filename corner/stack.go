package corner

import "github.com/vybium/cubecorners/cube"

// frame is a single DFS work item: a cube state, the turn that produced it
// ("none" is represented by lastNone), and its distance from the root.
type frame struct {
	state cube.State
	last  int
	dist  int
}

// lastNone is the "no previous turn" sentinel for the root frame.
const lastNone = -1

// dfsStack is the LIFO work container the generator drives. It owns every
// frame between push and pop; nothing else holds a reference to one.
type dfsStack struct {
	frames []frame
}

func newDFSStack() *dfsStack {
	return &dfsStack{frames: make([]frame, 0, 1024)}
}

func (s *dfsStack) push(f frame) {
	s.frames = append(s.frames, f)
}

func (s *dfsStack) pop() frame {
	n := len(s.frames) - 1
	f := s.frames[n]
	s.frames = s.frames[:n]
	return f
}

func (s *dfsStack) empty() bool {
	return len(s.frames) == 0
}
