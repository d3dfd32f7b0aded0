package tree

import (
	"errors"
	"fmt"
)

// ErrBadLayoutOption is returned by Layout for a non-positive level count or
// a negative margin.
var ErrBadLayoutOption = errors.New("tree: invalid layout option")

// LayoutOptions tune Layout.
type LayoutOptions struct {
	// Levels divides the canvas height into rows. Default 5.
	Levels int

	// TopMargin offsets the root row. Default 40.
	TopMargin float64

	err error
}

// LayoutOption configures Layout.
type LayoutOption func(*LayoutOptions)

// DefaultLayoutOptions returns five rows and a 40 unit top margin.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{Levels: 5, TopMargin: 40}
}

// WithLevels sets how many rows the height is divided into.
func WithLevels(n int) LayoutOption {
	return func(o *LayoutOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: levels %d", ErrBadLayoutOption, n)
			return
		}
		o.Levels = n
	}
}

// WithTopMargin sets the vertical offset of the root.
func WithTopMargin(m float64) LayoutOption {
	return func(o *LayoutOptions) {
		if m < 0 {
			o.err = fmt.Errorf("%w: margin %g", ErrBadLayoutOption, m)
			return
		}
		o.TopMargin = m
	}
}

// Layout assigns each node a display position on a width×height canvas.
//
// A node sits at the midpoint of its horizontal interval, starting from
// [0, width] at the root. Its children split the interval around a gap of a
// quarter of its width: the left child gets [l, x-gap/2] and the right child
// [x+gap/2, r]. The row is level*height/Levels + TopMargin.
// Positions depend only on shape, never on subtree sizes.
func Layout(root *Node, width, height float64, opts ...LayoutOption) (map[string]Point, error) {
	o := DefaultLayoutOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rowHeight := height / float64(o.Levels)
	pos := make(map[string]Point)

	var place func(n *Node, level int, l, r float64)
	place = func(n *Node, level int, l, r float64) {
		if n == nil {
			return
		}
		x := (l + r) / 2
		pos[n.ID] = Point{X: x, Y: float64(level)*rowHeight + o.TopMargin}

		gap := (r - l) / 4
		place(n.Left, level+1, l, x-gap/2)
		place(n.Right, level+1, x+gap/2, r)
	}
	place(root, 0, 0, width)

	return pos, nil
}
