package algebra

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/wick/rational"
	"github.com/katalvlaran/wick/space"
)

var (
	factorRe   = regexp.MustCompile(`^\s*([+-]?\d*)/?(\d*)\s*`)
	tensorRe   = regexp.MustCompile(`([a-zA-Z0-9]+)\^\{([\w,\s]*)\}_\{([\w,\s]*)\}`)
	operatorRe = regexp.MustCompile(`([ab])([+-])\(([\w]*)\)`)
	indexRe    = regexp.MustCompile(`^([a-zA-Z])_?(\d+)$`)
)

// ParseIndex reads an index such as "o0" or "v_12".
func ParseIndex(reg *space.Registry, s string) (Index, error) {
	m := indexRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Index{}, fmt.Errorf("algebra: ParseIndex(%q): %w", s, ErrParse)
	}
	sp, err := reg.LabelToSpace(rune(m[1][0]))
	if err != nil {
		return Index{}, fmt.Errorf("algebra: ParseIndex(%q): %w: %w", s, ErrParse, err)
	}
	p, err := strconv.Atoi(m[2])
	if err != nil {
		return Index{}, fmt.Errorf("algebra: ParseIndex(%q): %w", s, ErrParse)
	}

	return NewIndex(sp, p), nil
}

func parseIndexList(reg *space.Registry, s string) ([]Index, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	out := make([]Index, 0, len(fields))
	for _, f := range fields {
		i, err := ParseIndex(reg, f)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}

	return out, nil
}

// ParseTerm reads a single term and its coefficient. Tensors are created
// with the given symmetry. The term is returned as written; it is not
// canonicalized.
func ParseTerm(reg *space.Registry, s string, sym Symmetry) (SymbolicTerm, rational.Rational, error) {
	var term SymbolicTerm

	rest := s
	for _, m := range tensorRe.FindAllStringSubmatch(s, -1) {
		upper, err := parseIndexList(reg, m[2])
		if err != nil {
			return SymbolicTerm{}, rational.Zero(), err
		}
		lower, err := parseIndexList(reg, m[3])
		if err != nil {
			return SymbolicTerm{}, rational.Zero(), err
		}
		term.AddTensor(NewTensor(m[1], lower, upper, sym))
		rest = strings.Replace(rest, m[0], "", 1)
	}
	for _, m := range operatorRe.FindAllStringSubmatch(rest, -1) {
		idx, err := ParseIndex(reg, m[3])
		if err != nil {
			return SymbolicTerm{}, rational.Zero(), err
		}
		if m[2] == "+" {
			term.AddOperator(Cre(idx))
		} else {
			term.AddOperator(Ann(idx))
		}
	}
	term.SetNormalOrdered(strings.Contains(rest, "{"))

	coeff := rational.One()
	if f := factorRe.FindStringSubmatch(s); f != nil {
		num := f[1]
		switch num {
		case "", "+":
			num = "1"
		case "-":
			num = "-1"
		}
		text := num
		if f[2] != "" {
			text += "/" + f[2]
		}
		c, err := rational.Parse(text)
		if err != nil {
			return SymbolicTerm{}, rational.Zero(), fmt.Errorf("algebra: ParseTerm(%q): %w: %w", s, ErrParse, err)
		}
		coeff = c
	}

	return term, coeff, nil
}

// ParseExpression reads one term per line; blank lines are skipped. Tensors
// are antisymmetric.
func ParseExpression(reg *space.Registry, s string) (*Expression, error) {
	e := NewExpression()
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		term, c, err := ParseTerm(reg, line, Antisymmetric)
		if err != nil {
			return nil, err
		}
		e.Add(term, c)
	}

	return e, nil
}

// MustParseExpression is ParseExpression for fixed inputs; it panics on
// error.
func MustParseExpression(reg *space.Registry, s string) *Expression {
	e, err := ParseExpression(reg, s)
	if err != nil {
		panic(err)
	}

	return e
}
