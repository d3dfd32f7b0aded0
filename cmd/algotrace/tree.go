package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/internal/output"
	"github.com/katalvlaran/algostep/stepper"
	"github.com/katalvlaran/algostep/tree"
)

func newTreeCommand(a *app) *cobra.Command {
	var (
		algos  []string
		file   string
		layout bool
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Trace a binary tree traversal",
		Example: `  algotrace tree --algo inorder --format text
  algotrace tree --algo all --file bst.yaml --final`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := loadTree(file)
			if err != nil {
				return err
			}
			cache, err := newCache[tree.Snapshot](a)
			if err != nil {
				return err
			}

			return a.write(cmd, func(out *output.Writer) error {
				for _, id := range expand(algos, tree.Algorithms) {
					f, err := replayable(func() (stepper.Stepper[tree.Snapshot], error) {
						return tree.New(id, root)
					})
					if err != nil {
						return err
					}
					err = emit(a, out, cache, run[tree.Snapshot]{
						family:    catalog.Tree,
						algorithm: string(id),
						key:       traceKey(catalog.Tree, string(id), root),
						factory:   f,
						summarize: func(s tree.Snapshot) string { return s.Message },
					})
					if err != nil {
						return err
					}
				}
				if layout {
					return writeLayout(out, root)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&algos, "algo", []string{string(tree.Inorder)},
		"traversals to run, comma separated, or all")
	cmd.Flags().StringVar(&file, "file", "", "YAML tree fixture (sample tree when empty)")
	cmd.Flags().BoolVar(&layout, "layout", false, "after the runs, print node coordinates on an 800×400 canvas")

	return cmd
}

// placement is one node of the tree layout.
type placement struct {
	ID    string  `json:"id" yaml:"id"`
	Value int     `json:"value" yaml:"value"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
}

func writeLayout(out *output.Writer, root *tree.Node) error {
	pos, err := tree.Layout(root, 800, 400)
	if err != nil {
		return err
	}
	for _, n := range tree.Nodes(root) {
		p := pos[n.ID]
		line := fmt.Sprintf("%s (%d) at (%g, %g)", n.ID, n.Value, p.X, p.Y)
		if err := out.Item(placement{ID: n.ID, Value: n.Value, X: p.X, Y: p.Y}, line); err != nil {
			return err
		}
	}

	return nil
}
