package dp

import (
	"fmt"
	"maps"

	"github.com/katalvlaran/algostep/stepper"
)

type fibPhase uint8

const (
	fibEnter fibPhase = iota
	fibAwaitLeft
	fibAwaitRight
)

// fibCall is one suspended fib(n) invocation.
type fibCall struct {
	n     int
	phase fibPhase
	left  int // fib(n-1) once known
}

type fibRun struct {
	n       int
	memo    map[int]int
	calls   stepper.Frames[fibCall]
	ret     int // value returned by the call just popped
	started bool
	done    bool
}

// Fibonacci returns a stepper instrumenting top-down memoized Fibonacci.
//
// Each call emits exactly one snapshot when it is a base case (n <= 1) or a
// memo hit. Any other call emits a "computing" snapshot on entry and a result
// snapshot once both subcalls have returned. The run is bracketed by an
// opening snapshot and a terminal one carrying the result, where the memo is
// completed with the base cases so it covers every integer in [0, n].
func Fibonacci(n int) stepper.Stepper[FibSnapshot] {
	return &fibRun{n: n, memo: make(map[int]int, max(n+1, 2))}
}

func (r *fibRun) Advance() (FibSnapshot, bool) {
	if r.done {
		return FibSnapshot{}, false
	}
	if !r.started {
		r.started = true
		r.calls.Push(fibCall{n: r.n})
		return r.snapshot(r.n, fmt.Sprintf("Computing Fibonacci(%d)", r.n)), true
	}

	for !r.calls.Empty() {
		c := r.calls.Top()
		switch c.phase {
		case fibEnter:
			if c.n <= 1 {
				r.memo[c.n] = c.n
				return r.leave(c.n, fmt.Sprintf("Base case: F(%d) = %d", c.n, c.n)), true
			}
			if v, ok := r.memo[c.n]; ok {
				return r.leave(v, fmt.Sprintf("Found in memo: F(%d) = %d", c.n, v)), true
			}
			c.phase = fibAwaitLeft
			snap := r.snapshot(c.n, fmt.Sprintf("Computing F(%d) = F(%d) + F(%d)", c.n, c.n-1, c.n-2))
			snap.Pending = []int{c.n - 1, c.n - 2}
			r.calls.Push(fibCall{n: c.n - 1})

			return snap, true

		case fibAwaitLeft:
			c.left = r.ret
			c.phase = fibAwaitRight
			r.calls.Push(fibCall{n: c.n - 2})

		case fibAwaitRight:
			sum := c.left + r.ret
			r.memo[c.n] = sum
			return r.leave(sum, fmt.Sprintf("F(%d) = %d + %d = %d", c.n, c.left, r.ret, sum)), true
		}
	}

	return r.finish(), true
}

// leave snapshots the top call, pops it and hands v to its caller.
func (r *fibRun) leave(v int, msg string) FibSnapshot {
	snap := r.snapshot(r.calls.Top().n, msg)
	r.calls.Pop()
	r.ret = v

	return snap
}

func (r *fibRun) finish() FibSnapshot {
	r.done = true
	for k := 0; k <= min(r.n, 1); k++ {
		if _, ok := r.memo[k]; !ok {
			r.memo[k] = k
		}
	}
	snap := r.snapshot(r.n, fmt.Sprintf("Fibonacci(%d) = %d", r.n, r.ret))
	snap.Result = intPtr(r.ret)

	return snap
}

func (r *fibRun) snapshot(current int, msg string) FibSnapshot {
	stack := make([]int, 0, r.calls.Len())
	r.calls.Each(func(c *fibCall) { stack = append(stack, c.n) })

	return FibSnapshot{
		Memo:      maps.Clone(r.memo),
		Current:   current,
		Pending:   []int{},
		CallStack: stack,
		Message:   msg,
	}
}
