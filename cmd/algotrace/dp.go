package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/dp"
	"github.com/katalvlaran/algostep/input"
	"github.com/katalvlaran/algostep/internal/output"
	"github.com/katalvlaran/algostep/stepper"
)

func newDPCommand(a *app) *cobra.Command {
	var (
		algos []string
		n     int
		tf    tableFlags
	)

	cmd := &cobra.Command{
		Use:   "dp",
		Short: "Trace a dynamic-programming solution",
		Long: `Runs memoized Fibonacci, the 0/1 knapsack table, the longest common
subsequence table or dynamic time warping. Each problem reads only its own
flags.`,
		Example: `  algotrace dp --algo fibonacci --n 6 --format text
  algotrace dp --algo knapsack --weights 2,3,4,5 --values 3,4,5,6 --capacity 5
  algotrace dp --algo lcs --a AGCAT --b GAC --final
  algotrace dp --algo dtw --seq-a 1,3,4,9 --seq-b 1,4,9 --window 2 --penalty 1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fibs, err := newCache[dp.FibSnapshot](a)
			if err != nil {
				return err
			}
			tables, err := newCache[dp.TableSnapshot](a)
			if err != nil {
				return err
			}

			return a.write(cmd, func(out *output.Writer) error {
				for _, id := range expand(algos, dp.Algorithms) {
					if id == dp.FibonacciMemo {
						if err := input.Fibonacci(n); err != nil {
							return err
						}
						err := emit(a, out, fibs, run[dp.FibSnapshot]{
							family:    catalog.DP,
							algorithm: string(id),
							key:       traceKey(catalog.DP, string(id), n),
							factory:   func() stepper.Stepper[dp.FibSnapshot] { return dp.Fibonacci(n) },
							summarize: func(s dp.FibSnapshot) string { return s.Message },
						})
						if err != nil {
							return err
						}
						continue
					}

					p, err := tf.params(id)
					if err != nil {
						return err
					}
					f, err := replayable(func() (stepper.Stepper[dp.TableSnapshot], error) {
						return dp.New(id, p)
					})
					if err != nil {
						return err
					}
					err = emit(a, out, tables, run[dp.TableSnapshot]{
						family:    catalog.DP,
						algorithm: string(id),
						key:       traceKey(catalog.DP, string(id), p),
						factory:   f,
						summarize: func(s dp.TableSnapshot) string { return s.Message },
					})
					if err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	fl := cmd.Flags()
	fl.StringSliceVar(&algos, "algo", []string{string(dp.FibonacciMemo)},
		"problems to run, comma separated, or all")
	fl.IntVar(&n, "n", input.DefaultFibonacci, "fibonacci: index to compute")
	fl.IntSliceVar(&tf.weights, "weights", input.DefaultWeights, "knapsack: item weights")
	fl.IntSliceVar(&tf.values, "values", input.DefaultValues, "knapsack: item values")
	fl.IntVar(&tf.capacity, "capacity", input.DefaultCapacity, "knapsack: capacity")
	fl.StringVar(&tf.a, "a", input.DefaultLCSA, "lcs: first string")
	fl.StringVar(&tf.b, "b", input.DefaultLCSB, "lcs: second string")
	fl.IntSliceVar(&tf.seqA, "seq-a", input.DefaultSeriesA, "dtw: first series")
	fl.IntSliceVar(&tf.seqB, "seq-b", input.DefaultSeriesB, "dtw: second series")
	fl.IntVar(&tf.window, "window", 0, "dtw: Sakoe-Chiba band width, 0 for none")
	fl.IntVar(&tf.penalty, "penalty", 0, "dtw: cost of each insertion or deletion step")

	return cmd
}

type tableFlags struct {
	weights, values []int
	capacity        int
	a, b            string
	seqA, seqB      []int
	window, penalty int
}

// params validates the inputs of one tabular problem. Unknown ids pass
// through for dp.New to reject.
func (f tableFlags) params(id dp.Algorithm) (dp.Params, error) {
	switch id {
	case dp.KnapsackTable:
		if err := input.Knapsack(f.weights, f.values, f.capacity); err != nil {
			return dp.Params{}, err
		}
		return dp.Params{Weights: f.weights, Values: f.values, Capacity: f.capacity}, nil
	case dp.LCSTable:
		upperA, upperB, err := input.LCS(f.a, f.b)
		if err != nil {
			return dp.Params{}, err
		}
		return dp.Params{A: upperA, B: upperB}, nil
	case dp.DTWTable:
		if err := input.DTW(f.seqA, f.seqB, f.window, f.penalty); err != nil {
			return dp.Params{}, err
		}
		return dp.Params{SeqA: f.seqA, SeqB: f.seqB, Window: f.window, SlopePenalty: f.penalty}, nil
	}

	return dp.Params{}, nil
}
