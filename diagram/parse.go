package diagram

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/katalvlaran/wick/rational"
	"github.com/katalvlaran/wick/space"
)

// ErrBadComponent is returned for operator component strings that cannot
// be read.
var ErrBadComponent = errors.New("diagram: malformed operator component")

var legRe = regexp.MustCompile(`[a-zA-Z][+^]?`)

// ParseComponent reads one operator component, either in leg form
// ("v+ v+ o o") or in arrow form ("oo->vv"), and returns its vertex.
func ParseComponent(reg *space.Registry, s string) (Vertex, error) {
	var v Vertex
	add := func(label rune, cre bool) error {
		sp, err := reg.LabelToSpace(label)
		if err != nil {
			return fmt.Errorf("diagram: ParseComponent(%q): %w", s, err)
		}
		if cre {
			v.SetCre(sp, v.Cre(sp)+1)
		} else {
			v.SetAnn(sp, v.Ann(sp)+1)
		}

		return nil
	}

	if strings.Contains(s, "->") {
		sides := strings.Split(s, "->")
		if len(sides) != 2 {
			return Vertex{}, fmt.Errorf("diagram: ParseComponent(%q): %w", s, ErrBadComponent)
		}
		for n, side := range sides {
			for _, r := range side {
				if unicode.IsSpace(r) {
					continue
				}
				if err := add(r, n == 1); err != nil {
					return Vertex{}, err
				}
			}
		}

		return v, nil
	}

	rest := strings.TrimSpace(legRe.ReplaceAllString(s, ""))
	legs := legRe.FindAllString(s, -1)
	if rest != "" {
		return Vertex{}, fmt.Errorf("diagram: ParseComponent(%q): %w", s, ErrBadComponent)
	}
	for _, leg := range legs {
		if err := add(rune(leg[0]), len(leg) > 1); err != nil {
			return Vertex{}, err
		}
	}

	return v, nil
}

// MakeOperator returns the sum of one single-operator product per
// component, each with coefficient 1.
func MakeOperator(reg *space.Registry, label string, components ...string) (*OperatorExpression, error) {
	return makeOperator(reg, label, false, components)
}

// MakeUniqueOperator is MakeOperator, except that a component whose vertex
// was already produced by an earlier component is skipped.
func MakeUniqueOperator(reg *space.Registry, label string, components ...string) (*OperatorExpression, error) {
	return makeOperator(reg, label, true, components)
}

func makeOperator(reg *space.Registry, label string, unique bool, components []string) (*OperatorExpression, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("diagram: MakeOperator(%q): no components: %w", label, ErrBadComponent)
	}
	out := NewOperatorExpression()
	for _, c := range components {
		v, err := ParseComponent(reg, c)
		if err != nil {
			return nil, err
		}
		p := OperatorProduct{{Label: label, Vertex: v}}
		if unique && !out.acc.Coefficient(p).IsZero() {
			continue
		}
		out.Add(p, rational.One())
	}

	return out, nil
}

// MustMakeOperator is MakeOperator for fixed inputs; it panics on error.
func MustMakeOperator(reg *space.Registry, label string, components ...string) *OperatorExpression {
	e, err := MakeOperator(reg, label, components...)
	if err != nil {
		panic(err)
	}

	return e
}
