package stepper

// Frames is an explicit call stack for algorithms that must pause in the
// middle of a recursion. Each element holds one pending call's locals; the
// element type usually carries a phase tag that acts as the frame's program
// counter.
//
// Top returns a pointer into the backing array, so it must not be held
// across a Push.
type Frames[F any] struct {
	items []F
}

// Push adds f on top of the stack.
func (s *Frames[F]) Push(f F) { s.items = append(s.items, f) }

// Pop removes and returns the top frame. It panics on an empty stack.
func (s *Frames[F]) Pop() F {
	n := len(s.items) - 1
	f := s.items[n]
	var zero F
	s.items[n] = zero
	s.items = s.items[:n]

	return f
}

// Top returns the frame currently executing, or nil when the stack is empty.
func (s *Frames[F]) Top() *F {
	if len(s.items) == 0 {
		return nil
	}

	return &s.items[len(s.items)-1]
}

// Len reports the stack depth.
func (s *Frames[F]) Len() int { return len(s.items) }

// Empty reports whether no calls are pending.
func (s *Frames[F]) Empty() bool { return len(s.items) == 0 }

// Each calls fn for every frame from the bottom of the stack to the top.
func (s *Frames[F]) Each(fn func(*F)) {
	for i := range s.items {
		fn(&s.items[i])
	}
}
