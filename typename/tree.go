package typename

import "strings"

// typeNode is one `name<args...>` segment of a type expression. Text that
// follows a closing '>' (e.g. " const &" or "::iterator") starts the next
// segment, so a whole expression is a flat list of nodes.
type typeNode struct {
	name    string
	args    []typeExpr
	hasArgs bool
}

type typeExpr []typeNode

// parseTypeExpr splits s into its template tree. Template arguments are
// separated by commas at angle-bracket and parenthesis depth zero. It
// reports false when the angle brackets are unbalanced.
func parseTypeExpr(s string) (typeExpr, bool) {
	p := &treeParser{input: s}
	expr, ok := p.parseExpr(false)
	if !ok || p.pos != len(s) {
		return nil, false
	}
	return expr, true
}

type treeParser struct {
	input string
	pos   int
}

// parseExpr reads segments until the end of input or, inside an argument
// list, until a top-level ',' or the closing '>'. The terminator is left
// unconsumed.
func (p *treeParser) parseExpr(inArgs bool) (typeExpr, bool) {
	var expr typeExpr
	var name strings.Builder
	parens := 0

	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch {
		case c == '(':
			parens++
		case c == ')':
			parens--
		case c == ',' && inArgs && parens == 0:
			return appendName(expr, name.String()), true
		case c == '>' && !isArrow(p.input, p.pos):
			if !inArgs {
				return nil, false
			}
			return appendName(expr, name.String()), true
		case c == '<':
			p.pos++
			args, ok := p.parseArgs()
			if !ok {
				return nil, false
			}
			expr = append(expr, typeNode{name: name.String(), args: args, hasArgs: true})
			name.Reset()
			continue
		}
		name.WriteByte(c)
		p.pos++
	}

	if inArgs {
		// end of input inside an argument list
		return nil, false
	}
	return appendName(expr, name.String()), true
}

// parseArgs parses a template argument list; p.pos is just past the '<'.
func (p *treeParser) parseArgs() ([]typeExpr, bool) {
	var args []typeExpr
	for {
		arg, ok := p.parseExpr(true)
		if !ok {
			return nil, false
		}
		args = append(args, arg)

		switch p.input[p.pos] {
		case ',':
			p.pos++
		case '>':
			p.pos++
			return args, true
		}
	}
}

func appendName(expr typeExpr, name string) typeExpr {
	if name != "" || len(expr) == 0 {
		expr = append(expr, typeNode{name: name})
	}
	return expr
}

// isArrow reports whether the '>' at i belongs to a "->" token.
func isArrow(s string, i int) bool {
	return i > 0 && s[i-1] == '-'
}

func (e typeExpr) String() string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}

func (e typeExpr) writeTo(b *strings.Builder) {
	for _, n := range e {
		n.writeTo(b)
	}
}

func (n typeNode) writeTo(b *strings.Builder) {
	b.WriteString(n.name)
	if !n.hasArgs {
		return
	}
	b.WriteByte('<')
	for i, arg := range n.args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strings.TrimSpace(arg.String()))
	}
	b.WriteByte('>')
}

func (n typeNode) String() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

// depth is the template nesting depth: 0 for a plain name, 1 for
// vector<int>, 2 for map<int, vector<int>>.
func (e typeExpr) depth() int {
	d := 0
	for _, n := range e {
		if nd := n.depth(); nd > d {
			d = nd
		}
	}
	return d
}

func (n typeNode) depth() int {
	if !n.hasArgs {
		return 0
	}
	d := 0
	for _, arg := range n.args {
		if ad := arg.depth(); ad > d {
			d = ad
		}
	}
	return d + 1
}

// splitQualifiedTail splits a node name into a free-text prefix and the
// trailing qualified identifier, e.g. "const std::vector" -> ("const ", "std::vector").
func splitQualifiedTail(name string) (prefix, path string) {
	end := len(strings.TrimRight(name, " "))
	i := end
	for i > 0 && isPathByte(name[i-1]) {
		i--
	}
	return name[:i], name[i:end]
}

func isPathByte(c byte) bool {
	return c == ':' || c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
