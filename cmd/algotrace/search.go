package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/input"
	"github.com/katalvlaran/algostep/internal/output"
	"github.com/katalvlaran/algostep/searching"
	"github.com/katalvlaran/algostep/stepper"
)

func newSearchCommand(a *app) *cobra.Command {
	var (
		algos  []string
		values string
		target string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Trace a search for a target value",
		Example: `  algotrace search --algo binary --values 40,10,30,20,50 --target 40
  algotrace search --algo all --random --format text`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			array, err := a.array(values, input.SearchingDefaults)
			if err != nil {
				return err
			}
			want, err := a.target(target, array)
			if err != nil {
				return err
			}
			cache, err := newCache[searching.Snapshot](a)
			if err != nil {
				return err
			}

			return a.write(cmd, func(out *output.Writer) error {
				for _, id := range expand(algos, searching.Algorithms) {
					f, err := replayable(func() (stepper.Stepper[searching.Snapshot], error) {
						return searching.New(id, array, want)
					})
					if err != nil {
						return err
					}
					err = emit(a, out, cache, run[searching.Snapshot]{
						family:    catalog.Searching,
						algorithm: string(id),
						key:       traceKey(catalog.Searching, string(id), array, want),
						factory:   f,
						summarize: searchSummary,
					})
					if err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&algos, "algo", []string{string(searching.LinearSearch)},
		"algorithms to run, comma separated, or all")
	cmd.Flags().StringVar(&values, "values", "", "numbers to search (random when empty)")
	cmd.Flags().StringVar(&target, "target", "", "value to find (a random element when empty)")

	return cmd
}

// target parses text, or picks a random element of array when text is empty.
func (a *app) target(text string, array []int) (int, error) {
	if strings.TrimSpace(text) == "" {
		v := array[a.rng.Intn(len(array))]
		a.log.Info("random target", slog.Int("target", v))
		return v, nil
	}

	return input.ParseTarget(text)
}

func searchSummary(s searching.Snapshot) string {
	var line string
	switch {
	case s.Found:
		line = fmt.Sprintf("found at index %d", s.Current)
	case s.Current == searching.NoIndex:
		line = "not found"
	default:
		line = fmt.Sprintf("check index %d (value %d)", s.Current, s.Array[s.Current])
	}
	if s.Bounded {
		line += fmt.Sprintf(" window [%d,%d]", s.Lo, s.Hi)
	}

	return line
}
