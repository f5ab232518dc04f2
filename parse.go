package planner

import (
	"fmt"
	"unicode"
)

// Parse reads the textual surface syntax spec.md §6 suggests —
// true, p, not(p), and(Φ,Ψ), or(Φ,Ψ), ex(Φ), ax(Φ), eu(Ψ,Φ), au(Ψ,Φ),
// ef(Φ), af(Φ), eg(Φ), ag(Φ) — into a Formula tree. Ground compound
// terms such as "at(robot,1)" are not formula operators; any head
// symbol that is not one of the fixed operator keywords is parsed as
// an atomic proposition whose text is taken verbatim, args and all,
// per spec.md §3's "treated atomically by identity."
func Parse(src string) (Formula, error) {
	p := &parser{s: src}
	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.i != len(p.s) {
		return nil, fmt.Errorf("planner: unexpected trailing input %q", p.s[p.i:])
	}
	return f, nil
}

type parser struct {
	s string
	i int
}

func (p *parser) skipSpace() {
	for p.i < len(p.s) && unicode.IsSpace(rune(p.s[p.i])) {
		p.i++
	}
}

func (p *parser) peek() byte {
	if p.i >= len(p.s) {
		return 0
	}
	return p.s[p.i]
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (p *parser) readIdent() (string, error) {
	p.skipSpace()
	start := p.i
	for p.i < len(p.s) && isIdentRune(rune(p.s[p.i])) {
		p.i++
	}
	if p.i == start {
		return "", fmt.Errorf("planner: expected identifier at offset %d in %q", start, p.s)
	}
	return p.s[start:p.i], nil
}

// readBalancedParen consumes a leading '(' and returns everything up
// to (and including) its matching ')', tracking nesting so ground
// terms like "at(holding(arm),1)" round-trip unharmed.
func (p *parser) readBalancedParen() (string, error) {
	if p.peek() != '(' {
		return "", fmt.Errorf("planner: expected '(' at offset %d", p.i)
	}
	start := p.i
	depth := 0
	for p.i < len(p.s) {
		switch p.s[p.i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				p.i++
				return p.s[start:p.i], nil
			}
		}
		p.i++
	}
	return "", fmt.Errorf("planner: unbalanced '(' starting at offset %d", start)
}

func (p *parser) expect(b byte) error {
	p.skipSpace()
	if p.peek() != b {
		return fmt.Errorf("planner: expected %q at offset %d in %q", string(b), p.i, p.s)
	}
	p.i++
	return nil
}

// parseArgs parses exactly n comma-separated Formula arguments inside
// parentheses.
func (p *parser) parseArgs(n int) ([]Formula, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	args := make([]Formula, 0, n)
	for i := 0; i < n; i++ {
		f, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		args = append(args, f)
		if i < n-1 {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
	}
	p.skipSpace()
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return args, nil
}

var unaryOps = map[string]func(Formula) Formula{
	"not": func(f Formula) Formula { return NotF{Inner: f} },
	"ex":  func(f Formula) Formula { return ExF{Inner: f} },
	"ax":  func(f Formula) Formula { return AxF{Inner: f} },
	"ef":  func(f Formula) Formula { return EfF{Inner: f} },
	"af":  func(f Formula) Formula { return AfF{Inner: f} },
	"eg":  func(f Formula) Formula { return EgF{Inner: f} },
	"ag":  func(f Formula) Formula { return AgF{Inner: f} },
}

var binaryOps = map[string]func(a, b Formula) Formula{
	"and": func(a, b Formula) Formula { return AndF{Left: a, Right: b} },
	"or":  func(a, b Formula) Formula { return OrF{Left: a, Right: b} },
	"eu":  func(a, b Formula) Formula { return EuF{Psi: a, Phi: b} },
	"au":  func(a, b Formula) Formula { return AuF{Psi: a, Phi: b} },
}

func (p *parser) parseFormula() (Formula, error) {
	p.skipSpace()
	ident, err := p.readIdent()
	if err != nil {
		return nil, err
	}

	if ident == "true" {
		return TrueF{}, nil
	}
	if ctor, ok := unaryOps[ident]; ok {
		args, err := p.parseArgs(1)
		if err != nil {
			return nil, err
		}
		return ctor(args[0]), nil
	}
	if ctor, ok := binaryOps[ident]; ok {
		args, err := p.parseArgs(2)
		if err != nil {
			return nil, err
		}
		return ctor(args[0], args[1]), nil
	}

	// Not an operator keyword: an atomic proposition, possibly a ground
	// compound term. Capture it verbatim.
	if p.peek() == '(' {
		raw, err := p.readBalancedParen()
		if err != nil {
			return nil, err
		}
		return AtomF{Prop: ident + raw}, nil
	}
	return AtomF{Prop: ident}, nil
}

// MustParse is Parse, panicking on error. Intended for model registries
// and tests that embed known-good literal formulas, the way the
// teacher's example builders embed known-good literal graphs.
func MustParse(src string) Formula {
	f, err := Parse(src)
	if err != nil {
		panic(fmt.Sprintf("planner.MustParse(%q): %v", src, err))
	}
	return f
}

// String renders a Formula back into the surface syntax Parse accepts.
func String(f Formula) string {
	switch n := f.(type) {
	case TrueF:
		return "true"
	case AtomF:
		return n.Prop
	case NotF:
		return "not(" + String(n.Inner) + ")"
	case AndF:
		return "and(" + String(n.Left) + "," + String(n.Right) + ")"
	case OrF:
		return "or(" + String(n.Left) + "," + String(n.Right) + ")"
	case ExF:
		return "ex(" + String(n.Inner) + ")"
	case AxF:
		return "ax(" + String(n.Inner) + ")"
	case EuF:
		return "eu(" + String(n.Psi) + "," + String(n.Phi) + ")"
	case AuF:
		return "au(" + String(n.Psi) + "," + String(n.Phi) + ")"
	case EfF:
		return "ef(" + String(n.Inner) + ")"
	case AfF:
		return "af(" + String(n.Inner) + ")"
	case EgF:
		return "eg(" + String(n.Inner) + ")"
	case AgF:
		return "ag(" + String(n.Inner) + ")"
	default:
		return fmt.Sprintf("<%T>", f)
	}
}
