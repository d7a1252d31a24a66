package csscolorparser

// paramParser splits the text inside a color function's parentheses into
// values separated by spaces, commas, or slashes. Separators inside nested
// parentheses are not significant, so a value can itself be a function
// call such as "rgb(0,0,0)" or "calc(r + 10)". Values are substrings of
// the input; nothing is copied.
type paramParser struct {
	s   string
	idx int
}

// value returns the text from the current index until a space, comma, or
// slash is found at parenthesis depth zero. Reports false if there is no
// value at the current index.
func (p *paramParser) value() (string, bool) {
	if p.isEnd() {
		return "", false
	}

	switch p.s[p.idx] {
	case ' ', ',', '/':
		return "", false
	}

	start := p.idx

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
		case ' ', ',', '/':
			if nesting == 0 {
				// delimiter is outside parentheses
				return p.s[start:p.idx], true
			}
		}
		p.idx++
	}

	return p.s[start:], true
}

// space consumes one or more spaces and reports whether any were found.
func (p *paramParser) space() bool {
	found := false
	for p.idx < len(p.s) && p.s[p.idx] == ' ' {
		p.idx++
		found = true
	}
	return found
}

// commaOrSpace consumes one or more spaces or a single comma, with spaces
// allowed around the comma. The second result reports whether a comma was
// among the consumed separators, which is how the parser detects the
// legacy comma dialect.
func (p *paramParser) commaOrSpace() (found bool, comma bool) {
	foundSpace := false

	for p.idx < len(p.s) {
		switch p.s[p.idx] {
		case ' ':
			foundSpace = true
			p.idx++
			continue
		case ',':
			if comma {
				return true, true
			}
			comma = true
			p.idx++
			continue
		}
		break
	}

	return comma || foundSpace, comma
}

// commaOrSlash consumes a single comma or a single slash, with spaces
// allowed around it. The second result reports whether the separator was
// a comma.
func (p *paramParser) commaOrSlash() (found bool, comma bool) {
	for p.idx < len(p.s) {
		switch p.s[p.idx] {
		case ' ':
			p.idx++
			continue
		case ',', '/':
			if found {
				return true, comma
			}
			found = true
			comma = p.s[p.idx] == ','
			p.idx++
			continue
		}
		break
	}

	return found, comma
}

// slash consumes a single slash, with spaces allowed around it.
func (p *paramParser) slash() bool {
	found := false

	for p.idx < len(p.s) {
		switch p.s[p.idx] {
		case ' ':
			p.idx++
			continue
		case '/':
			if found {
				return true
			}
			found = true
			p.idx++
			continue
		}
		break
	}

	return found
}

func (p *paramParser) isEnd() bool {
	return p.idx >= len(p.s)
}
