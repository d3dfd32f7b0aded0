package trace_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/stepper"
	"github.com/katalvlaran/algostep/trace"
)

func bubble(values ...int) trace.Factory[sorting.Snapshot] {
	return func() stepper.Stepper[sorting.Snapshot] { return sorting.Bubble(values) }
}

func TestRecord(t *testing.T) {
	rec := trace.Record("bubble", sorting.Bubble([]int{3, 1, 2}))
	assert.True(t, strings.HasPrefix(rec.ID, "run_"), rec.ID)
	assert.Len(t, rec.ID, len("run_")+26)
	assert.Equal(t, "bubble", rec.Algorithm)
	assert.Equal(t, 6, rec.Len())

	final, ok := rec.Final()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, final.Array)

	other := trace.Record("bubble", sorting.Bubble([]int{3, 1, 2}))
	assert.NotEqual(t, rec.ID, other.ID)
	assert.Equal(t, rec.Snapshots, other.Snapshots)

	empty := &trace.Recording[int]{}
	_, ok = empty.Final()
	assert.False(t, ok)
}

type CursorSuite struct {
	suite.Suite
	want   []sorting.Snapshot
	cursor *trace.Cursor[sorting.Snapshot]
}

func (s *CursorSuite) SetupTest() {
	f := bubble(4, 2, 3, 1)
	s.want = stepper.Collect(f())
	s.cursor = trace.NewCursor(f)
}

func (s *CursorSuite) TestForwardMatchesRecording() {
	for i, want := range s.want {
		got, ok := s.cursor.Next()
		s.Require().True(ok)
		s.Equal(want, got, "snapshot %d", i)
		s.Equal(i+1, s.cursor.Position())
	}
	_, ok := s.cursor.Next()
	s.False(ok)
	s.True(s.cursor.Done())
	s.Equal(len(s.want), s.cursor.Position())
}

func (s *CursorSuite) TestPrevReplays() {
	for i := 0; i < 5; i++ {
		s.cursor.Next()
	}
	got, ok := s.cursor.Prev()
	s.Require().True(ok)
	s.Equal(4, s.cursor.Position())
	s.Equal(s.want[3], got)

	cur, ok := s.cursor.Current()
	s.True(ok)
	s.Equal(s.want[3], cur)

	next, _ := s.cursor.Next()
	s.Equal(s.want[4], next)
}

func (s *CursorSuite) TestPrevAfterDone() {
	for {
		if _, ok := s.cursor.Next(); !ok {
			break
		}
	}
	got, ok := s.cursor.Prev()
	s.Require().True(ok)
	s.False(s.cursor.Done())
	s.Equal(s.want[len(s.want)-2], got)
}

func (s *CursorSuite) TestPrevAtStart() {
	_, ok := s.cursor.Prev()
	s.False(ok)

	s.cursor.Next()
	_, ok = s.cursor.Prev()
	s.False(ok, "nothing before the first snapshot")
	s.Equal(1, s.cursor.Position())
}

func (s *CursorSuite) TestReset() {
	s.cursor.Next()
	s.cursor.Next()
	s.cursor.Reset()
	s.Equal(0, s.cursor.Position())
	_, ok := s.cursor.Current()
	s.False(ok)

	first, _ := s.cursor.Next()
	s.Equal(s.want[0], first)
}

func TestCursorSuite(t *testing.T) {
	suite.Run(t, new(CursorSuite))
}

func TestCache(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cache, err := trace.NewCache[sorting.Snapshot](trace.CacheConfig{MaxSize: 2, Logger: logger})
	require.NoError(t, err)

	calls := 0
	counting := func(values ...int) trace.Factory[sorting.Snapshot] {
		return func() stepper.Stepper[sorting.Snapshot] {
			calls++
			return sorting.Bubble(values)
		}
	}

	k1 := trace.Key("sorting", "bubble", []int{3, 1, 2})
	a := cache.Recording(k1, "bubble", counting(3, 1, 2))
	b := cache.Recording(k1, "bubble", counting(3, 1, 2))
	assert.Same(t, a, b)
	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "trace cache miss")
	assert.Contains(t, buf.String(), "trace cache hit")

	cache.Recording(trace.Key("sorting", "bubble", []int{2, 1}), "bubble", counting(2, 1))
	cache.Recording(trace.Key("sorting", "bubble", []int{1}), "bubble", counting(1))
	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get(k1)
	assert.False(t, ok, "least recently used entry is evicted")
}

func TestKey(t *testing.T) {
	a := trace.Key("searching", "binary", []int{1, 2}, 7)
	assert.Equal(t, "searching/binary:[1,2]|7", a)
	assert.NotEqual(t, a, trace.Key("searching", "binary", []int{1, 2}, 8))
}

func TestNewCache_Defaults(t *testing.T) {
	cache, err := trace.NewCache[int](trace.CacheConfig{})
	require.NoError(t, err)
	assert.Equal(t, 0, cache.Len())
}
