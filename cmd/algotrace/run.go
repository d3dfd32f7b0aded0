package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/internal/output"
	"github.com/katalvlaran/algostep/stepper"
	"github.com/katalvlaran/algostep/trace"
)

// expand maps the --algo values to ids. A lone "all" selects every id.
func expand[A ~string](requested []string, all []A) []A {
	if len(requested) == 1 && strings.EqualFold(requested[0], "all") {
		return slices.Clone(all)
	}
	ids := make([]A, 0, len(requested))
	for _, r := range requested {
		ids = append(ids, A(strings.ToLower(strings.TrimSpace(r))))
	}

	return ids
}

// replayable turns a dispatch constructor into a trace factory, surfacing the
// constructor's error up front. The first stepper built is handed out on the
// first call.
func replayable[S any](build func() (stepper.Stepper[S], error)) (trace.Factory[S], error) {
	first, err := build()
	if err != nil {
		return nil, err
	}

	return func() stepper.Stepper[S] {
		if first != nil {
			s := first
			first = nil
			return s
		}
		s, err := build()
		if err != nil {
			// build is deterministic and already succeeded once
			panic(err)
		}
		return s
	}, nil
}

func newCache[S any](a *app) (*trace.Cache[S], error) {
	return trace.NewCache[S](trace.CacheConfig{MaxSize: a.v.GetInt("cache-size"), Logger: a.log})
}

// run is one algorithm execution ready to be recorded.
type run[S any] struct {
	family    catalog.Family
	algorithm string
	key       string
	factory   trace.Factory[S]
	summarize func(S) string
}

// emit records r through cache and writes its snapshots.
func emit[S any](a *app, out *output.Writer, cache *trace.Cache[S], r run[S]) error {
	rec := cache.Recording(r.key, r.algorithm, r.factory)
	a.log.Info("run recorded",
		slog.String("run", rec.ID),
		slog.String("family", string(r.family)),
		slog.String("algorithm", r.algorithm),
		slog.Int("snapshots", rec.Len()))

	if info, err := catalog.Lookup(r.family, r.algorithm); err == nil {
		if err := out.Heading(fmt.Sprintf("%s · time %s · space %s", info.Name, info.Time, info.Space)); err != nil {
			return err
		}
	}

	write := func(snap S, index int) error {
		err := out.Write(output.Step{
			Run:       rec.ID,
			Family:    string(r.family),
			Algorithm: r.algorithm,
			Index:     index,
			Total:     rec.Len(),
			Summary:   r.summarize(snap),
			Snapshot:  snap,
		})
		if err != nil {
			return fmt.Errorf("write snapshot %d: %w", index, err)
		}
		return nil
	}

	if a.step != 0 {
		snap, index, err := seek(r.factory, a.step, rec.Len())
		if err != nil {
			return err
		}
		return write(snap, index)
	}

	first := 0
	if a.final {
		first = max(rec.Len()-1, 0)
	}
	for i := first; i < rec.Len(); i++ {
		if err := write(rec.Snapshots[i], i+1); err != nil {
			return err
		}
	}

	return nil
}

// seek replays a fresh run from f up to snapshot step (1-based). A negative
// step counts back from the last of total snapshots, stepping the cursor
// backward.
func seek[S any](f trace.Factory[S], step, total int) (S, int, error) {
	var zero S
	if step > total || -step > total {
		return zero, 0, fmt.Errorf("--step %d: run has %d snapshots", step, total)
	}

	c := trace.NewCursor(f)
	for c.Position() != step {
		if _, ok := c.Next(); !ok {
			break
		}
	}
	for target := total + step + 1; step < 0 && c.Position() > target; {
		if _, ok := c.Prev(); !ok {
			break
		}
	}
	snap, _ := c.Current()

	return snap, c.Position(), nil
}

func traceKey(f catalog.Family, algorithm string, inputs ...any) string {
	return trace.Key(string(f), algorithm, inputs...)
}
