package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/wick/algebra"
	"github.com/katalvlaran/wick/rational"
	"github.com/katalvlaran/wick/space"
)

// Option configures a table.
type Option func(*Options)

// Options holds the table settings.
type Options struct {
	// Markdown selects the markdown renderer. Default false (box drawing).
	Markdown bool

	// Color enables ANSI colours. Default false.
	Color bool
}

// DefaultOptions returns plain box-drawn tables.
func DefaultOptions() Options {
	return Options{Markdown: false, Color: false}
}

// WithMarkdown toggles the markdown renderer.
func WithMarkdown(on bool) Option {
	return func(o *Options) { o.Markdown = on }
}

// WithColor toggles colours.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// table wraps a tablewriter.Table with the resolved options.
type table struct {
	t    *tablewriter.Table
	opts Options
}

func newTable(w io.Writer, o Options, headers ...string) *table {
	alignment := make([]tw.Align, len(headers))
	for i := range alignment {
		alignment[i] = tw.AlignNone
	}
	var r tw.Renderer = renderer.NewBlueprint()
	if o.Markdown {
		r = renderer.NewMarkdown()
	}
	t := tablewriter.NewTable(w,
		tablewriter.WithRenderer(r),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	t.Header(headers)

	return &table{t: t, opts: o}
}

func (t *table) append(row ...string) error { return t.t.Append(row) }

func (t *table) render() error { return t.t.Render() }

func (t *table) paint(text string, attrs ...color.Attribute) string {
	if !t.opts.Color || text == "" {
		return text
	}

	return color.New(attrs...).Sprint(text)
}

// coeff prints c with an explicit sign, red when negative.
func (t *table) coeff(c rational.Rational) string {
	s := c.String()
	if c.Sign() < 0 {
		return t.paint(s, color.FgRed)
	}

	return t.paint("+"+s, color.FgGreen)
}

// ExpressionTable writes one row per term of e in canonical order.
func ExpressionTable(w io.Writer, reg *space.Registry, e *algebra.Expression, opts ...Option) error {
	t := newTable(w, resolve(opts), "#", "coefficient", "term")
	for n, term := range e.Terms() {
		body := term.Symbolic.Render(reg)
		if body == "" {
			body = "1"
		}
		if err := t.append(strconv.Itoa(n+1), t.coeff(term.Coeff), body); err != nil {
			return fmt.Errorf("render: ExpressionTable: %w", err)
		}
	}
	if err := t.render(); err != nil {
		return fmt.Errorf("render: ExpressionTable: %w", err)
	}

	return nil
}

// EquationsTable writes the equations of every block, blocks sorted by
// key. The key "o|v" is split into its upper and lower parts.
func EquationsTable(w io.Writer, reg *space.Registry, eqs map[string][]algebra.Equation, opts ...Option) error {
	t := newTable(w, resolve(opts), "upper", "lower", "lhs", "factor", "rhs")
	keys := make([]string, 0, len(eqs))
	for k := range eqs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		upper, lower, _ := strings.Cut(k, "|")
		for _, eq := range eqs[k] {
			row := []string{
				t.paint(upper, color.FgCyan),
				t.paint(lower, color.FgCyan),
				eq.LHS.Render(reg),
				t.coeff(eq.Factor),
				eq.RHS.Render(reg),
			}
			if err := t.append(row...); err != nil {
				return fmt.Errorf("render: EquationsTable: %w", err)
			}
		}
	}
	if err := t.render(); err != nil {
		return fmt.Errorf("render: EquationsTable: %w", err)
	}

	return nil
}

// RegistryTable lists the spaces of reg in registry order.
func RegistryTable(w io.Writer, reg *space.Registry, opts ...Option) error {
	t := newTable(w, resolve(opts), "label", "kind", "field", "operator", "indices")
	for s := 0; s < reg.Len(); s++ {
		sp := reg.Space(s)
		row := []string{
			t.paint(string(sp.Label), color.FgCyan, color.Bold),
			sp.Kind.String(),
			sp.Field.String(),
			reg.OpSymbol(s),
			strings.Join(sp.Indices, " "),
		}
		if err := t.append(row...); err != nil {
			return fmt.Errorf("render: RegistryTable: %w", err)
		}
	}
	if err := t.render(); err != nil {
		return fmt.Errorf("render: RegistryTable: %w", err)
	}

	return nil
}

// MetricsTable gathers g and writes one row per series. Counters and
// gauges print their value; histograms and summaries their sample count
// and sum.
func MetricsTable(w io.Writer, g prometheus.Gatherer, opts ...Option) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("render: MetricsTable: %w", err)
	}

	t := newTable(w, resolve(opts), "metric", "type", "value")
	for _, f := range families {
		for _, m := range f.GetMetric() {
			row := []string{
				t.paint(f.GetName(), color.FgCyan),
				strings.ToLower(f.GetType().String()),
				metricValue(f.GetType(), m),
			}
			if err := t.append(row...); err != nil {
				return fmt.Errorf("render: MetricsTable: %w", err)
			}
		}
	}
	if err := t.render(); err != nil {
		return fmt.Errorf("render: MetricsTable: %w", err)
	}

	return nil
}

func metricValue(typ dto.MetricType, m *dto.Metric) string {
	switch typ {
	case dto.MetricType_COUNTER:
		return strconv.FormatFloat(m.GetCounter().GetValue(), 'g', -1, 64)
	case dto.MetricType_GAUGE:
		return strconv.FormatFloat(m.GetGauge().GetValue(), 'g', -1, 64)
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return fmt.Sprintf("count=%d sum=%.6g", h.GetSampleCount(), h.GetSampleSum())
	case dto.MetricType_SUMMARY:
		s := m.GetSummary()
		return fmt.Sprintf("count=%d sum=%.6g", s.GetSampleCount(), s.GetSampleSum())
	default:
		return strconv.FormatFloat(m.GetUntyped().GetValue(), 'g', -1, 64)
	}
}

// PartitionsTable lists partitions with their length.
func PartitionsTable(w io.Writer, partitions [][]int, opts ...Option) error {
	t := newTable(w, resolve(opts), "#", "parts", "partition")
	for n, p := range partitions {
		parts := make([]string, len(p))
		for i, x := range p {
			parts[i] = strconv.Itoa(x)
		}
		if err := t.append(strconv.Itoa(n+1), strconv.Itoa(len(p)), strings.Join(parts, " ")); err != nil {
			return fmt.Errorf("render: PartitionsTable: %w", err)
		}
	}
	if err := t.render(); err != nil {
		return fmt.Errorf("render: PartitionsTable: %w", err)
	}

	return nil
}
