package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/input"
	"github.com/katalvlaran/algostep/internal/output"
	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/stepper"
)

func newSortCommand(a *app) *cobra.Command {
	var (
		algos  []string
		values string
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Trace a sorting algorithm",
		Example: `  algotrace sort --values 5,3,8,1,9
  algotrace sort --algo all --random --seed 7 --final --format text`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			array, err := a.array(values, input.SortingDefaults)
			if err != nil {
				return err
			}
			cache, err := newCache[sorting.Snapshot](a)
			if err != nil {
				return err
			}

			return a.write(cmd, func(out *output.Writer) error {
				for _, id := range expand(algos, sorting.Algorithms) {
					f, err := replayable(func() (stepper.Stepper[sorting.Snapshot], error) {
						return sorting.New(id, array)
					})
					if err != nil {
						return err
					}
					err = emit(a, out, cache, run[sorting.Snapshot]{
						family:    catalog.Sorting,
						algorithm: string(id),
						key:       traceKey(catalog.Sorting, string(id), array),
						factory:   f,
						summarize: sortSummary,
					})
					if err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&algos, "algo", []string{string(sorting.BubbleSort)},
		"algorithms to run, comma separated, or all")
	cmd.Flags().StringVar(&values, "values", "", "numbers to sort, e.g. 5,3,8,1,9 (random when empty)")

	return cmd
}

func sortSummary(s sorting.Snapshot) string {
	var b strings.Builder
	switch {
	case len(s.Swapping) == 2:
		fmt.Fprintf(&b, "swap %d,%d", s.Swapping[0], s.Swapping[1])
	case len(s.Comparing) == 2:
		fmt.Fprintf(&b, "compare %d,%d", s.Comparing[0], s.Comparing[1])
	case len(s.Sorted) == len(s.Array):
		b.WriteString("sorted")
	default:
		b.WriteString("state")
	}
	if s.Pivot != sorting.NoIndex {
		fmt.Fprintf(&b, " pivot=%d", s.Pivot)
	}
	fmt.Fprintf(&b, " %v", s.Array)

	return b.String()
}
