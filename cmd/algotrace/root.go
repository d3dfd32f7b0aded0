package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/algostep/input"
	"github.com/katalvlaran/algostep/internal/logging"
	"github.com/katalvlaran/algostep/internal/output"
)

// app is the state shared by every subcommand once flags and config are
// resolved.
type app struct {
	v      *viper.Viper
	log    *slog.Logger
	format output.Format
	color  bool
	final  bool
	step   int
	rng    *rand.Rand
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: logging.NewNop()}

	root := &cobra.Command{
		Use:   "algotrace",
		Short: "Step through classic algorithms and dump every snapshot",
		Long: `algotrace drives the step-by-step algorithm engines and writes each
intermediate snapshot as JSON lines, YAML documents or colorized text.

Defaults for the global flags may be kept in ./algotrace.yaml or in the file
named by --config, and in ALGOTRACE_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ./algotrace.yaml)")
	pf.String("format", string(output.JSON), "output format: json, yaml or text")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.String("log-format", logging.FormatText, "log format: text or json")
	pf.Bool("no-color", false, "disable colored text output")
	pf.Bool("final", false, "print only the terminal snapshot of each run")
	pf.Int("step", 0, "print only snapshot N of each run; negative counts from the end")
	pf.Bool("random", false, "sort and search a random array instead of --values")
	pf.Int64("seed", 0, "random seed; 0 seeds from the clock")
	_ = a.v.BindPFlags(pf)
	a.v.SetDefault("cache-size", 64)

	root.AddCommand(
		newSortCommand(a),
		newSearchCommand(a),
		newGraphCommand(a),
		newTreeCommand(a),
		newDPCommand(a),
		newListCommand(a),
	)

	return root
}

// setup loads config, then builds the logger, writer settings and RNG.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("ALGOTRACE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	file, _ := cmd.Flags().GetString("config")
	if file != "" {
		a.v.SetConfigFile(file)
	} else {
		a.v.SetConfigName("algotrace")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var missing viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &missing) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	level, err := logging.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	if a.log, err = logging.New(cmd.ErrOrStderr(), level, a.v.GetString("log-format")); err != nil {
		return err
	}
	if a.format, err = output.ParseFormat(a.v.GetString("format")); err != nil {
		return err
	}
	a.color = !a.v.GetBool("no-color") && logging.IsTerminal(cmd.OutOrStdout())
	a.final = a.v.GetBool("final")
	a.step = a.v.GetInt("step")
	if a.final && a.step != 0 {
		return errors.New("--final and --step are mutually exclusive")
	}

	seed := a.v.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.rng = rand.New(rand.NewSource(seed))

	a.log.Debug("configured",
		slog.String("config", a.v.ConfigFileUsed()),
		slog.String("format", string(a.format)),
		slog.Int64("seed", seed))

	return nil
}

// array resolves the array for sort and search: --values when given, a
// random draw from r otherwise or when --random is set.
func (a *app) array(text string, r input.Range) ([]int, error) {
	if a.v.GetBool("random") || strings.TrimSpace(text) == "" {
		values := r.Random(a.rng)
		a.log.Info("random array", slog.Any("values", values))
		return values, nil
	}
	values, err := input.ParseInts(text)
	if err != nil {
		return nil, err
	}
	if err := input.Array(values); err != nil {
		return nil, err
	}

	return values, nil
}

// write runs fn against a fresh writer on the command's stdout and flushes it.
func (a *app) write(cmd *cobra.Command, fn func(out *output.Writer) error) error {
	out := output.New(cmd.OutOrStdout(), a.format, a.color)
	if err := fn(out); err != nil {
		return err
	}

	return out.Close()
}
