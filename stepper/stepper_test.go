package stepper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/stepper"
)

// countdown emits n, n-1, ..., 1 and then stops.
func countdown(n int) stepper.Stepper[int] {
	return stepper.Func[int](func() (int, bool) {
		if n == 0 {
			return 0, false
		}
		n--
		return n + 1, true
	})
}

func TestCollect(t *testing.T) {
	got := stepper.Collect(countdown(3))
	assert.Equal(t, []int{3, 2, 1}, got)
	assert.Nil(t, stepper.Collect(countdown(0)))
}

func TestAll_BreakLeavesStepperPaused(t *testing.T) {
	s := countdown(4)
	var seen []int
	for v := range stepper.All(s) {
		seen = append(seen, v)
		if v == 3 {
			break
		}
	}
	require.Equal(t, []int{4, 3}, seen)

	// The next snapshot is still available.
	v, ok := s.Advance()
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestLastAndCount(t *testing.T) {
	last, ok := stepper.Last(countdown(5))
	require.True(t, ok)
	assert.Equal(t, 1, last)

	_, ok = stepper.Last(countdown(0))
	assert.False(t, ok)

	assert.Equal(t, 7, stepper.Count(countdown(7)))
}

func TestFrames(t *testing.T) {
	var fs stepper.Frames[int]
	require.True(t, fs.Empty())
	require.Nil(t, fs.Top())

	fs.Push(1)
	fs.Push(2)
	*fs.Top() = 20
	require.Equal(t, 2, fs.Len())

	var order []int
	fs.Each(func(f *int) { order = append(order, *f) })
	assert.Equal(t, []int{1, 20}, order)

	assert.Equal(t, 20, fs.Pop())
	assert.Equal(t, 1, fs.Pop())
	assert.True(t, fs.Empty())
}
