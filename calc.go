package csscolorparser

import "strings"

// The calc() grammar accepted in relative color components is deliberately
// restricted: exactly one binary operation per parenthesized group, with
// deeper expressions nested explicitly, e.g. "calc((1+2)+3)". There is no
// operator precedence and "calc(1+2+3)" is invalid.

// calcParser splits one group into "operand operator operand". Operators
// inside nested parentheses belong to the operand.
type calcParser struct {
	s   string
	idx int
}

// operand returns the text until an operator or space is found at
// parenthesis depth zero. A single leading minus sign is part of the
// operand, so "-7--5" splits into "-7", '-', "-5".
func (p *calcParser) operand() (string, bool) {
	if p.isEnd() {
		return "", false
	}

	start := p.idx

	switch p.s[p.idx] {
	case '-':
		p.idx++
	case '+', '*', '/':
		return "", false
	}

	// parenthesis depth
	nesting := 0

	for p.idx < len(p.s) {
		switch p.s[p.idx] {
		case '(':
			nesting++
		case ')':
			if nesting > 0 {
				nesting--
			}
		case '+', '-', '*', '/', ' ':
			if nesting == 0 {
				// operator is outside parentheses
				return p.s[start:p.idx], true
			}
		}
		p.idx++
	}

	return p.s[start:], true
}

func (p *calcParser) operator() (byte, bool) {
	if p.isEnd() {
		return 0, false
	}

	switch c := p.s[p.idx]; c {
	case '+', '-', '*', '/':
		p.idx++
		return c, true
	}
	return 0, false
}

func (p *calcParser) isEnd() bool {
	for p.idx < len(p.s) && p.s[p.idx] == ' ' {
		p.idx++
	}
	return p.idx >= len(p.s)
}

func (p *calcParser) parse() (va string, op byte, vb string, ok bool) {
	va, ok1 := p.operand()
	op, ok2 := p.operator()
	vb, ok3 := p.operand()
	if !(ok1 && ok2 && ok3 && p.isEnd()) {
		return "", 0, "", false
	}
	return va, op, vb, true
}

// varBinding associates a component name with the origin color's value in
// the enclosing function's native scale. Bindings are matched
// case-insensitively and are read-only during resolution of one color.
type varBinding struct {
	name  string
	value float64
}

// resolveComponent reads one relative-color component: a number literal,
// a variable reference, or a calc() expression over the bindings.
func resolveComponent(s string, vars *[4]varBinding) (float64, bool) {
	if v, ok := resolveScalar(s, vars); ok {
		return v, true
	}
	if t, found := stripPrefixFold(s, "calc"); found {
		return evalCalc(t, vars, 0)
	}
	return 0, false
}

func resolveScalar(s string, vars *[4]varBinding) (float64, bool) {
	if v, ok := parseFloat(s); ok {
		return v, true
	}
	for _, b := range vars {
		if strings.EqualFold(s, b.name) {
			return b.value, true
		}
	}
	return 0, false
}

// Nested parenthesized groups may recurse; the depth cap keeps a
// pathological input from exhausting the stack.
func evalCalc(s string, vars *[4]varBinding, depth int) (float64, bool) {
	if depth >= maxNestingDepth {
		return 0, false
	}

	s, found := stripPrefixFold(s, "(")
	if !found {
		return 0, false
	}
	s, found = stripSuffixFold(s, ")")
	if !found {
		return 0, false
	}

	p := calcParser{s: s}
	va, op, vb, ok := p.parse()
	if !ok {
		return 0, false
	}

	a, ok := resolveScalar(va, vars)
	if !ok {
		if a, ok = evalCalc(va, vars, depth+1); !ok {
			return 0, false
		}
	}

	b, ok := resolveScalar(vb, vars)
	if !ok {
		if b, ok = evalCalc(vb, vars, depth+1); !ok {
			return 0, false
		}
	}

	switch op {
	case '+':
		return a + b, true
	case '-':
		return a - b, true
	case '*':
		return a * b, true
	default:
		// Division by a zero-valued operand is a parse failure, not
		// infinity propagation.
		if b == 0 {
			return 0, false
		}
		return a / b, true
	}
}
