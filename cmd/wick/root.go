package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/wick/config"
	"github.com/katalvlaran/wick/render"
)

// app carries the global flags and the state built from them.
type app struct {
	out io.Writer

	configPath string
	verbose    bool
	noColor    bool
	markdown   bool

	logger *zap.Logger
	cfg    *config.Config
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "wick",
		Short: "Wick's theorem for products of second-quantized operators",
		Long: `wick contracts products of normal-ordered operators over a registry of
orbital spaces and prints the resulting tensor expressions.

Spaces and named operators come from a YAML file (--config); without one
the occupied/unoccupied setup with T1, T2, F and V is used.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colours")
	pf.BoolVar(&a.markdown, "markdown", false, "print markdown tables")

	root.AddCommand(
		newContractCmd(a),
		newSpacesCmd(a),
		newOperatorsCmd(a),
		newPartitionsCmd(a),
	)

	return root
}

// setup builds the logger and loads the configuration.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	zcfg := zap.NewProductionConfig()
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	if a.noColor {
		color.NoColor = true
	}

	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Int("spaces", len(a.cfg.Spaces)),
		zap.Int("operators", len(a.cfg.Operators)))

	return nil
}

func (a *app) tableOptions() []render.Option {
	return []render.Option{
		render.WithMarkdown(a.markdown),
		render.WithColor(!a.noColor),
	}
}

func newSpacesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "spaces",
		Short: "List the orbital spaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.cfg.Registry()
			if err != nil {
				return err
			}

			return render.RegistryTable(a.out, reg, a.tableOptions()...)
		},
	}
}

func newOperatorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "operators",
		Short: "List the named operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.cfg.Registry()
			if err != nil {
				return err
			}
			ops, err := a.cfg.BuildOperators(reg)
			if err != nil {
				return err
			}
			for _, name := range a.cfg.OperatorNames() {
				fmt.Fprintf(a.out, "%s:\n%s\n", name, ops[name].Render(reg))
			}

			return nil
		},
	}
}
