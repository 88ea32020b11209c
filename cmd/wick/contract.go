package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wick/combinatorics"
	"github.com/katalvlaran/wick/diagram"
	"github.com/katalvlaran/wick/rational"
	"github.com/katalvlaran/wick/render"
	"github.com/katalvlaran/wick/wick"
)

var errUnknownOperator = errors.New("unknown operator")

type contractFlags struct {
	factor     string
	minRank    int
	maxRank    int
	commutator bool
	bch        int
	equation   string
	text       bool
	metrics    bool
	connected  bool
}

func newContractCmd(a *app) *cobra.Command {
	var f contractFlags
	cmd := &cobra.Command{
		Use:   "contract NAME...",
		Short: "Contract a product of named operators",
		Long: `contract multiplies the named operators left to right and applies Wick's
theorem, keeping terms with between --min-rank and --max-rank free
operators.

With --commutator the operators are nested as [[A,B],C]; with --bch N the
first operator is similarity transformed by the second up to N nested
commutators.`,
		Example: `  wick contract --text F T1
  wick contract --commutator --factor 1/2 --min-rank 2 --max-rank 2 --equation r F T1 T1
  wick contract --bch 2 --max-rank 0 V T2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.contract(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.factor, "factor", "1", "overall rational factor, e.g. 1/2")
	fl.IntVar(&f.minRank, "min-rank", 0, "minimum number of free operators")
	fl.IntVar(&f.maxRank, "max-rank", 0, "maximum number of free operators")
	fl.BoolVar(&f.commutator, "commutator", false, "nest the operators as commutators")
	fl.IntVar(&f.bch, "bch", 0, "similarity transform NAME[0] by NAME[1] to this order")
	fl.StringVar(&f.equation, "equation", "", "print many-body equations for a tensor with this label")
	fl.BoolVar(&f.text, "text", false, "print the expression as text instead of a table")
	fl.BoolVar(&f.metrics, "metrics", false, "print engine metrics afterwards")
	fl.BoolVar(&f.connected, "connected", false, "keep only terms whose tensors are linked")

	return cmd
}

func (a *app) contract(cmd *cobra.Command, names []string, f contractFlags) error {
	factor, err := rational.Parse(f.factor)
	if err != nil {
		return fmt.Errorf("--factor: %w", err)
	}
	if f.minRank > f.maxRank {
		return fmt.Errorf("--min-rank %d exceeds --max-rank %d", f.minRank, f.maxRank)
	}

	reg, err := a.cfg.Registry()
	if err != nil {
		return err
	}
	ops, err := a.cfg.BuildOperators(reg)
	if err != nil {
		return err
	}
	operands := make([]*diagram.OperatorExpression, len(names))
	for i, name := range names {
		op, ok := ops[name]
		if !ok {
			return fmt.Errorf("%q: %w (known: %v)", name, errUnknownOperator, a.cfg.OperatorNames())
		}
		operands[i] = op
	}

	expr, err := combine(operands, f)
	if err != nil {
		return err
	}

	pr := prometheus.NewRegistry()
	opts := append(a.cfg.TheoremOptions(), wick.WithLogger(a.logger))
	if f.metrics {
		opts = append(opts, wick.WithMetrics(wick.NewMetrics(pr)))
	}
	if f.connected {
		opts = append(opts, wick.WithConnectedOnly(true))
	}
	th := wick.NewTheorem(reg, opts...)

	a.logger.Debug("contracting",
		zap.Strings("operators", names),
		zap.Int("products", expr.Len()),
		zap.Stringer("factor", factor))
	sum, err := th.ContractExpression(cmd.Context(), factor, expr, f.minRank, f.maxRank)
	if err != nil {
		return err
	}

	switch {
	case f.equation != "":
		err = render.EquationsTable(a.out, reg, sum.ToManyBodyEquations(reg, f.equation), a.tableOptions()...)
	case f.text:
		_, err = fmt.Fprintln(a.out, sum.Render(reg))
	default:
		err = render.ExpressionTable(a.out, reg, sum, a.tableOptions()...)
	}
	if err != nil {
		return err
	}
	if f.metrics {
		return render.MetricsTable(a.out, pr, a.tableOptions()...)
	}

	return nil
}

// combine builds the operator expression requested by the flags.
func combine(operands []*diagram.OperatorExpression, f contractFlags) (*diagram.OperatorExpression, error) {
	switch {
	case f.bch > 0:
		if len(operands) != 2 {
			return nil, fmt.Errorf("--bch takes exactly two operators, got %d", len(operands))
		}
		if f.commutator {
			return nil, errors.New("--bch and --commutator are exclusive")
		}

		return diagram.BCHSeries(operands[0], operands[1], f.bch), nil
	case f.commutator:
		if len(operands) < 2 {
			return nil, errors.New("--commutator needs at least two operators")
		}
		out := operands[0]
		for _, op := range operands[1:] {
			out = diagram.Commutator(out, op)
		}

		return out, nil
	default:
		out := operands[0]
		for _, op := range operands[1:] {
			out = out.Mul(op)
		}

		return out, nil
	}
}

func newPartitionsCmd(a *app) *cobra.Command {
	var maxLen int
	cmd := &cobra.Command{
		Use:   "partitions N",
		Short: "List the integer partitions of N",
		Long: `partitions prints the partitions of N in the order used to distribute
legs of a General-space contraction over the operators of a product.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("N must be a non-negative integer, got %q", args[0])
			}
			if maxLen <= 0 {
				maxLen = n
			}

			return render.PartitionsTable(a.out, combinatorics.IntegerPartitions(n, maxLen), a.tableOptions()...)
		},
	}
	cmd.Flags().IntVar(&maxLen, "max-len", 0, "largest number of parts (default N)")

	return cmd
}
